package usecase

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sixtyday/jobboard/internal/dto"
	"github.com/sixtyday/jobboard/internal/model"
	"github.com/sixtyday/jobboard/internal/repository"
	"github.com/sixtyday/jobboard/internal/service"
)

type ApplicationUsecase struct {
	applications *repository.ApplicationRepository
	jobs         *repository.JobRepository
	users        *repository.UserRepository
	mailer       service.Mailer
}

func NewApplicationUsecase(applications *repository.ApplicationRepository, jobs *repository.JobRepository, users *repository.UserRepository, mailer service.Mailer) *ApplicationUsecase {
	return &ApplicationUsecase{applications: applications, jobs: jobs, users: users, mailer: mailer}
}

// Submit records the application, then hands the recruiter notification off
// to a background goroutine. The application record is the source of truth:
// submission succeeds regardless of notification outcome, and a slow relay
// never blocks the request.
func (uc *ApplicationUsecase) Submit(req dto.ApplyRequest) (uuid.UUID, error) {
	app := model.Application{
		JobID:             req.JobID,
		CandidateUsername: req.CandidateUsername,
		Message:           req.Message,
		Resume:            req.Resume,
		ResumeFilename:    req.ResumeFilename,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		CreatedAt:         time.Now(),
	}
	id, err := uc.applications.Create(&app)
	if err != nil {
		return uuid.Nil, err
	}

	go uc.notifyRecruiter(app)

	return id, nil
}

// notifyRecruiter is best effort: every failure is logged and swallowed.
func (uc *ApplicationUsecase) notifyRecruiter(app model.Application) {
	job, err := uc.jobs.FindByID(app.JobID)
	if err != nil || job == nil {
		log.Printf("notify recruiter: job %d lookup failed: %v", app.JobID, err)
		return
	}
	recruiterEmail, err := uc.users.EmailByUsername(job.PostedBy)
	if err != nil || recruiterEmail == "" {
		log.Printf("notify recruiter: no email for poster %s: %v", job.PostedBy, err)
		return
	}

	filename := app.ResumeFilename
	if filename == "" {
		filename = "resume.pdf"
	}
	err = uc.mailer.SendRecruiterNotification(service.Notification{
		To:             recruiterEmail,
		JobTitle:       job.Title,
		CandidateName:  app.FirstName + " " + app.LastName,
		Message:        app.Message,
		Resume:         app.Resume,
		ResumeFilename: filename,
	})
	if err != nil {
		log.Printf("notify recruiter: send to %s failed: %v", recruiterEmail, err)
		return
	}
	log.Printf("recruiter notification sent to %s", recruiterEmail)
}

func (uc *ApplicationUsecase) ForJob(jobID uint) ([]model.Application, error) {
	return uc.applications.ForJob(jobID)
}

// ForCandidate returns the candidate's applications joined with their jobs,
// newest job first.
func (uc *ApplicationUsecase) ForCandidate(username string) ([]model.Application, error) {
	return uc.applications.ForCandidate(username)
}

// Resume fetches one application for resume download; nil when absent.
func (uc *ApplicationUsecase) Resume(id uuid.UUID) (*model.Application, error) {
	return uc.applications.FindByID(id)
}
