package model

import (
	"time"

	"github.com/google/uuid"
)

// Application is an independent fact record with two foreign keys; neither
// the job nor the user owns it. There is deliberately no uniqueness
// constraint on (job_id, candidate_username) — the browse view hides jobs a
// candidate already applied to instead.
type Application struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID             uint      `gorm:"not null;index" json:"job_id"`
	Job               Job       `gorm:"foreignKey:JobID" json:"-"`
	CandidateUsername string    `gorm:"index" json:"candidate_username"`
	Message           string    `gorm:"type:text" json:"message"`
	Resume            []byte    `json:"-"` // optional, may be nil
	ResumeFilename    string    `json:"resume_filename,omitempty"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	CreatedAt         time.Time `json:"created_at"`
}

func (a *Application) TableName() string {
	return "applications"
}
