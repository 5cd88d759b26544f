package request

import (
	"time"
)

type SessionRequest struct {
	MovieID  string    `json:"movie" validate:"required"`
	CinemaID string    `json:"cinemaUid" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	RoomIDs  []string  `json:"roomUids" validate:"required,min=1,dive,required"`
}
