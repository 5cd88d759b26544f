package usecase

import (
	"testing"
	"time"

	"cinema-client/internal/data/remote"
	"cinema-client/internal/data/remote/remotetest"
	"cinema-client/internal/data/repository"

	"go.uber.org/zap"
)

const testToken = "test-token"

type testEnv struct {
	srv   *remotetest.Server
	store *repository.Store
	svc   *Service
}

// newTestEnv wires the full stack against an in-memory backend: real HTTP
// client, real store, real services.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	srv := remotetest.NewServer()
	t.Cleanup(srv.Close)

	log := zap.NewNop()
	client := remote.NewClient(srv.URL(), 5*time.Second, func() string { return testToken }, log)
	store := repository.NewStore(log)
	svc := NewService(remote.NewRemote(client, log), store, log)

	return &testEnv{srv: srv, store: store, svc: svc}
}

// deadService builds a service whose backend is already gone, sharing the
// given store. Every network call it makes fails with a transport error.
func deadService(t *testing.T, store *repository.Store) *Service {
	t.Helper()

	srv := remotetest.NewServer()
	url := srv.URL()
	srv.Close()

	log := zap.NewNop()
	client := remote.NewClient(url, time.Second, func() string { return testToken }, log)
	return NewService(remote.NewRemote(client, log), store, log)
}
