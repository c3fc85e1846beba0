package models

// User is a faculty account in the local credential store.
type User struct {
	ID           string `json:"_id,omitempty"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
	FullName     string `json:"fullName"`
	Department   string `json:"department"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registeredAt"`
	LastLogin    string `json:"lastLogin,omitempty"`
	IsActive     bool   `json:"isActive"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Department: u.Department,
		Role:       u.Role,
	}
}

// SessionRecord is the persisted current-session marker. Being logged in is
// derived from its presence; logout removes it.
type SessionRecord struct {
	UserID     string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	Department string `json:"department"`
	Role       string `json:"role"`
	LoginTime  string `json:"loginTime"`
}
