package request

type RoomRequest struct {
	CinemaID string `json:"cinemaUid" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=128"`
	Seats    int    `json:"seats" validate:"required,min=1"`
}
