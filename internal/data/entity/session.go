package entity

import (
	"time"
)

// Session is a scheduled showing of a movie. RoomIDs is stored as a
// collection on the wire, but every booking path today reads index 0 only.
type Session struct {
	ID      string    `json:"uid,omitempty"`
	MovieID string    `json:"movie"`
	Date    time.Time `json:"date"`
	RoomIDs []string  `json:"roomUids"`

	// CinemaID is attached client-side during aggregation; the backend does
	// not include it in session payloads.
	CinemaID string `json:"cinemaUid,omitempty"`
}
