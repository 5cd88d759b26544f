package entity

// Identity is the result of resolving the bearer credential.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}
