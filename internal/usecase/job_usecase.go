package usecase

import (
	"strings"
	"time"

	"github.com/sixtyday/jobboard/internal/dto"
	"github.com/sixtyday/jobboard/internal/model"
	"github.com/sixtyday/jobboard/internal/repository"
)

type JobUsecase struct {
	jobs         *repository.JobRepository
	applications *repository.ApplicationRepository
}

func NewJobUsecase(jobs *repository.JobRepository, applications *repository.ApplicationRepository) *JobUsecase {
	return &JobUsecase{jobs: jobs, applications: applications}
}

// Post persists a new job posting, stamping creation time at insertion.
func (uc *JobUsecase) Post(req dto.CreateJobRequest) (uint, error) {
	job := model.Job{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		VisaSponsorship: req.VisaSponsorship,
		Urgency:         req.Urgency,
		PostedBy:        req.PostedBy,
		Remote:          req.Remote,
		SalaryRange:     req.SalaryRange,
		SkillsCSV:       req.Skills,
		CreatedAt:       time.Now(),
	}
	return uc.jobs.Create(&job)
}

// Browse lists jobs newest first, applying any set filter criteria. When
// excludeFor names a candidate, jobs that candidate already applied to are
// hidden from the result.
func (uc *JobUsecase) Browse(filter dto.JobFilter, excludeFor string) ([]model.Job, error) {
	var (
		jobs []model.Job
		err  error
	)
	if filter.IsZero() {
		jobs, err = uc.jobs.List()
	} else {
		jobs, err = uc.jobs.Filter(filter)
	}
	if err != nil {
		return nil, err
	}
	if excludeFor == "" {
		return jobs, nil
	}

	applied, err := uc.applications.AppliedJobIDs(excludeFor)
	if err != nil {
		return nil, err
	}
	visible := jobs[:0]
	for _, job := range jobs {
		if _, ok := applied[job.ID]; !ok {
			visible = append(visible, job)
		}
	}
	return visible, nil
}

func (uc *JobUsecase) PostedBy(username string) ([]model.Job, error) {
	return uc.jobs.ListByPoster(username)
}

// SkillsForJob renders the job's tag set as a joined string for display.
func (uc *JobUsecase) SkillsForJob(jobID uint) (string, error) {
	names, err := uc.jobs.SkillNames(jobID)
	if err != nil {
		return "", err
	}
	return strings.Join(names, ", "), nil
}

func (uc *JobUsecase) AllSkills() ([]string, error) {
	return uc.jobs.AllSkillNames()
}
