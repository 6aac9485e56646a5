package auth

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
