package models

// User is an account in the locally stored user list. The password field
// holds a bcrypt hash, never the plaintext.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password,omitempty"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Office       string `json:"office"`
}
