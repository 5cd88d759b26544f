package entity

import (
	"time"
)

type ReservationStatus string

const (
	ReservationStatusOpen      ReservationStatus = "open"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID        string            `json:"uid,omitempty"`
	MovieID   string            `json:"movieUid"`
	SessionID string            `json:"sceance"`
	RoomID    string            `json:"room"`
	NbSeats   int               `json:"nbSeats"`
	Rank      int               `json:"rank"`
	Status    ReservationStatus `json:"status"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Username  string            `json:"username"`
}
