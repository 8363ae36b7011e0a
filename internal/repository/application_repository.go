package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sixtyday/jobboard/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

// Create inserts one application record and returns its generated id.
// Referential integrity on job_id is advisory: the storage layer does not
// verify the job exists.
func (r *ApplicationRepository) Create(app *model.Application) (uuid.UUID, error) {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	if err := r.db.Create(app).Error; err != nil {
		return uuid.Nil, err
	}
	return app.ID, nil
}

// FindByID returns nil without error when no such application exists.
func (r *ApplicationRepository) FindByID(id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ForJob(jobID uint) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Where("job_id = ?", jobID).Find(&apps).Error
	return apps, err
}

// ForCandidate returns the candidate's applications joined with the job each
// one answers, ordered by job creation time descending.
func (r *ApplicationRepository) ForCandidate(username string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Joins("Job").
		Where("applications.candidate_username = ?", username).
		Order("\"Job\".created_at DESC, \"Job\".id DESC").
		Find(&apps).Error
	return apps, err
}

// AppliedJobIDs returns the set of job ids the candidate has applied to,
// used to hide those jobs from the browse view.
func (r *ApplicationRepository) AppliedJobIDs(username string) (map[uint]struct{}, error) {
	var ids []uint
	err := r.db.Model(&model.Application{}).
		Where("candidate_username = ?", username).
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}
