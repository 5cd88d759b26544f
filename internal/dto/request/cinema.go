package request

type CinemaRequest struct {
	Name string `json:"name" validate:"required,min=1,max=128"`
}
