package models

// User roles.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is an authenticated principal. Students carry their roll number,
// which doubles as their customer identifier on orders.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	RollNumber string `json:"rollNumber,omitempty"`
}
