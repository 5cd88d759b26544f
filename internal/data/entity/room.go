package entity

type Room struct {
	ID       string `json:"uid,omitempty"`
	CinemaID string `json:"cinemaUid"`
	Name     string `json:"name"`
	Seats    int    `json:"seats"`
}
