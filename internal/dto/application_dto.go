package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/sixtyday/jobboard/internal/model"
)

// ApplyRequest is the apply-form payload; Resume is optional.
type ApplyRequest struct {
	JobID             uint
	CandidateUsername string
	Message           string
	Resume            []byte
	ResumeFilename    string
	FirstName         string
	LastName          string
	Email             string
	Phone             string
}

// ApplicationResponse is what a recruiter sees per applicant.
type ApplicationResponse struct {
	ID                uuid.UUID `json:"id"`
	CandidateUsername string    `json:"candidate_username"`
	Message           string    `json:"message"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	HasResume         bool      `json:"has_resume"`
	ResumeFilename    string    `json:"resume_filename,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewApplicationResponse(a model.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                a.ID,
		CandidateUsername: a.CandidateUsername,
		Message:           a.Message,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Email:             a.Email,
		Phone:             a.Phone,
		HasResume:         len(a.Resume) > 0,
		ResumeFilename:    a.ResumeFilename,
		CreatedAt:         a.CreatedAt,
	}
}

func NewApplicationResponses(apps []model.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}

// CandidateApplicationResponse renders "jobs you applied to": the job's
// fields joined with the candidate's message.
type CandidateApplicationResponse struct {
	Job     JobResponse `json:"job"`
	Message string      `json:"message"`
}

func NewCandidateApplicationResponses(apps []model.Application) []CandidateApplicationResponse {
	out := make([]CandidateApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, CandidateApplicationResponse{
			Job:     NewJobResponse(a.Job),
			Message: a.Message,
		})
	}
	return out
}
