package entity

import (
	"time"
)

type Movie struct {
	ID          string    `json:"uid,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rate        int       `json:"rate"`
	Duration    int       `json:"duration"`
	PictureURL  string    `json:"pictureUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
