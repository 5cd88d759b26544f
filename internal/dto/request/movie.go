package request

type MovieRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=128"`
	Description string `json:"description" validate:"required,min=1,max=4096"`
	Rate        int    `json:"rate" validate:"required,min=1,max=5"`
	Duration    int    `json:"duration" validate:"required,min=1,max=240"`
	PictureURL  string `json:"pictureUrl" validate:"omitempty,url"`
}
