package model

import "time"

const (
	RoleRecruiter = "recruiter"
	RoleCandidate = "candidate"
)

// User is created once at signup and never edited or deleted.
type User struct {
	Username  string    `gorm:"primaryKey" json:"username"`
	Password  string    `gorm:"type:varchar(64)" json:"-"` // sha256 hex digest, never plaintext
	Role      string    `gorm:"type:varchar(20)" json:"role"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) TableName() string {
	return "users"
}
