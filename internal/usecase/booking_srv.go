package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/data/remote"
	"cinema-client/internal/data/repository"

	"go.uber.org/zap"
)

type BookingState string

const (
	StateNoSelection   BookingState = "no_selection"
	StateSessionChosen BookingState = "session_chosen"
	StateSeatsChosen   BookingState = "seats_chosen"
	StateSubmitting    BookingState = "submitting"
	StateConfirmed     BookingState = "confirmed"
	StateFailed        BookingState = "failed"
)

type BookingService interface {
	// Start opens a booking flow for one movie.
	Start(movieID string) *BookingFlow

	// Confirm is the admin transition open → confirmed. Re-confirming an
	// already-confirmed reservation is a no-op success.
	Confirm(ctx context.Context, reservationID string) (*entity.Reservation, error)
}

type bookingService struct {
	remote *remote.Remote
	store  *repository.Store
	log    *zap.Logger
}

func NewBookingService(r *remote.Remote, store *repository.Store, log *zap.Logger) BookingService {
	return &bookingService{
		remote: r,
		store:  store,
		log:    log.With(zap.String("service", "booking")),
	}
}

// BookingFlow drives one reservation from session selection through
// submission. Transitions validate locally before anything touches the
// network; a failed submission keeps the selection so the user can retry.
type BookingFlow struct {
	svc     *bookingService
	movieID string
	state   BookingState
	session entity.Session
	nbSeats int
	failure string
}

func (s *bookingService) Start(movieID string) *BookingFlow {
	return &BookingFlow{
		svc:     s,
		movieID: movieID,
		state:   StateNoSelection,
	}
}

func (f *BookingFlow) State() BookingState { return f.state }

// FailureReason is the human-readable message of the last failed submission;
// empty unless the flow is in StateFailed.
func (f *BookingFlow) FailureReason() string { return f.failure }

// SelectSession picks one of the movie's open sessions. The open set is
// re-evaluated against the cache at call time, so a selection that went
// stale after a refresh is rejected instead of silently booking a closed
// session.
func (f *BookingFlow) SelectSession(sessionID string, now time.Time) error {
	open := openSessions(f.svc.store.SessionsSnapshot(), f.movieID, now)
	for _, s := range open {
		if s.ID == sessionID {
			f.session = s
			f.state = StateSessionChosen
			f.failure = ""
			return nil
		}
	}
	return newValidationError("session", fmt.Sprintf("session %s is not open for booking", sessionID))
}

// ChooseSeats sets the seat count. Only nbSeats >= 1 is checked here; room
// capacity is the server's authority, and a doomed zero-seat submission is
// not worth a round trip.
func (f *BookingFlow) ChooseSeats(nbSeats int) error {
	if f.state != StateSessionChosen && f.state != StateSeatsChosen && f.state != StateFailed {
		return newValidationError("session", "select a session before choosing seats")
	}
	if nbSeats < 1 {
		return newValidationError("nbSeats", "number of seats must be at least 1")
	}
	f.nbSeats = nbSeats
	f.state = StateSeatsChosen
	return nil
}

// Submit resolves the caller's identity and creates the reservation. On
// failure the flow moves to StateFailed with the reason, but the session and
// seat selection are preserved, so the next ChooseSeats or Submit picks up
// where the user left off.
func (f *BookingFlow) Submit(ctx context.Context) (*entity.Reservation, error) {
	if f.state != StateSeatsChosen && f.state != StateFailed {
		return nil, newValidationError("nbSeats", "choose a seat count before submitting")
	}
	if len(f.session.RoomIDs) == 0 {
		return nil, newValidationError("session", "selected session has no rooms")
	}

	f.state = StateSubmitting

	identity, err := f.svc.remote.Auth.Verify(ctx)
	if err != nil {
		f.fail(err)
		return nil, fmt.Errorf("resolve identity: %w", err)
	}

	reservation := &entity.Reservation{
		MovieID:   f.movieID,
		SessionID: f.session.ID,
		RoomID:    f.session.RoomIDs[0],
		NbSeats:   f.nbSeats,
		Rank:      1,
		Status:    entity.ReservationStatusOpen,
		ExpiresAt: f.session.Date,
		Username:  identity.Username,
	}

	created, err := f.svc.remote.Reservation.Create(ctx, reservation)
	if err != nil {
		f.fail(err)
		return nil, fmt.Errorf("submit reservation: %w", err)
	}

	f.state = StateConfirmed
	f.failure = ""
	f.svc.store.UpsertReservation(*created)

	f.svc.log.Info("Reservation submitted",
		zap.String("uid", created.ID),
		zap.String("movie_uid", f.movieID),
		zap.String("session_uid", f.session.ID),
		zap.Int("nb_seats", f.nbSeats),
		zap.String("username", identity.Username),
	)

	return created, nil
}

func (f *BookingFlow) fail(err error) {
	f.state = StateFailed
	f.failure = err.Error()
	f.svc.log.Warn("Reservation submission failed",
		zap.String("movie_uid", f.movieID),
		zap.String("session_uid", f.session.ID),
		zap.Error(err),
	)
}

func (s *bookingService) Confirm(ctx context.Context, reservationID string) (*entity.Reservation, error) {
	for _, cached := range s.store.ReservationsSnapshot() {
		if cached.ID == reservationID && cached.Status == entity.ReservationStatusConfirmed {
			// Already confirmed; re-issuing the command changes nothing.
			return &cached, nil
		}
	}

	confirmed, err := s.remote.Reservation.Confirm(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("confirm reservation %s: %w", reservationID, err)
	}

	confirmed.Status = entity.ReservationStatusConfirmed
	s.store.UpsertReservation(*confirmed)
	return confirmed, nil
}
