package cmd

import (
	"context"
	"fmt"
	"time"

	"cinema-client/internal/usecase"
)

// Browse runs one catalog cycle: refresh every collection, then print the
// first page of movies with their open-session counts.
func Browse(ctx context.Context, svc *usecase.Service, pageSize int) error {
	if err := svc.Catalog.RefreshAll(ctx); err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}

	page := svc.Catalog.BrowseMovies("", usecase.MovieSortByName, 1, pageSize)
	fmt.Printf("Movies (%d total, page %d/%d):\n", page.TotalItems, page.Number, page.TotalPages)

	now := time.Now()
	for _, movie := range page.Items {
		open := svc.Catalog.OpenSessions(movie.ID, now)
		fmt.Printf("  %-40s rate %d/5, %3d min, %d open session(s)\n",
			movie.Name, movie.Rate, movie.Duration, len(open))
	}

	return nil
}
