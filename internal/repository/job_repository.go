package repository

import (
	"errors"
	"strings"

	"github.com/sixtyday/jobboard/internal/dto"
	"github.com/sixtyday/jobboard/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// ParseSkills splits a comma-separated tag list, trims whitespace and drops
// duplicates while preserving first-seen order.
func ParseSkills(csv string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, part := range strings.Split(csv, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Create persists the job and associates its skill tags, creating unknown
// tags in the global vocabulary on demand. The job row and its associations
// commit together.
func (r *JobRepository) Create(job *model.Job) (uint, error) {
	names := ParseSkills(job.SkillsCSV)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		skills := make([]model.Skill, 0, len(names))
		for _, name := range names {
			var skill model.Skill
			if err := tx.FirstOrCreate(&skill, model.Skill{Name: name}).Error; err != nil {
				return err
			}
			skills = append(skills, skill)
		}
		job.Skills = skills
		return tx.Create(job).Error
	})
	if err != nil {
		return 0, err
	}
	return job.ID, nil
}

// FindByID returns nil without error when no such job exists.
func (r *JobRepository) FindByID(id uint) (*model.Job, error) {
	var job model.Job
	err := r.db.Preload("Skills").First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns every job, newest first.
func (r *JobRepository) List() ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Preload("Skills").
		Order("created_at DESC, id DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) ListByPoster(username string) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Preload("Skills").
		Where("posted_by = ?", username).
		Find(&jobs).Error
	return jobs, err
}

// Filter applies the set criteria over a jobs×skills join. A job with at
// least one matching tag passes the skill predicate; DISTINCT collapses jobs
// matched through multiple tags.
func (r *JobRepository) Filter(f dto.JobFilter) ([]model.Job, error) {
	q := r.db.Model(&model.Job{}).Distinct("jobs.*").
		Joins("LEFT JOIN job_skills ON job_skills.job_id = jobs.id").
		Joins("LEFT JOIN skills ON skills.id = job_skills.skill_id")

	if s := f.Skill; s != "" && s != dto.FilterAll {
		q = q.Where("skills.name = ?", s)
	}
	if f.Location != "" {
		q = q.Where("LOWER(jobs.location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if v := f.Remote; v != "" && v != dto.FilterAll {
		q = q.Where("jobs.remote = ?", v)
	}
	if v := f.Visa; v != "" && v != dto.FilterAll {
		q = q.Where("jobs.visa_sponsorship = ?", v)
	}
	if v := f.Urgency; v != "" && v != dto.FilterAll {
		q = q.Where("jobs.urgency = ?", v)
	}
	if f.Title != "" {
		q = q.Where("LOWER(jobs.title) LIKE ?", "%"+strings.ToLower(f.Title)+"%")
	}

	var jobs []model.Job
	err := q.Order("jobs.created_at DESC, jobs.id DESC").
		Preload("Skills").
		Find(&jobs).Error
	return jobs, err
}

// SkillNames returns the tag names associated with a job, in join order.
func (r *JobRepository) SkillNames(jobID uint) ([]string, error) {
	var names []string
	err := r.db.Model(&model.Skill{}).
		Joins("JOIN job_skills ON job_skills.skill_id = skills.id").
		Where("job_skills.job_id = ?", jobID).
		Pluck("skills.name", &names).Error
	return names, err
}

// AllSkillNames returns the whole vocabulary, sorted, for filter menus.
func (r *JobRepository) AllSkillNames() ([]string, error) {
	var names []string
	err := r.db.Model(&model.Skill{}).
		Order("name").
		Pluck("name", &names).Error
	return names, err
}
