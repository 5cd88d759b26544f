package entity

type Cinema struct {
	ID   string `json:"uid,omitempty"`
	Name string `json:"name"`
}
