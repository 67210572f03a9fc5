package models

// User mirrors the users table owned by the account service. The navigation
// backend only reads it during login.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}
