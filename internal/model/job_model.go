package model

import "time"

const (
	UrgencyImmediate = "Immediate"
	UrgencyThirty    = "Within 30 Days"
	UrgencyFlexible  = "Flexible"
)

type Job struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string    `json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	Location        string    `json:"location"`
	VisaSponsorship string    `gorm:"type:varchar(3)" json:"visa_sponsorship"` // Yes / No
	Urgency         string    `gorm:"type:varchar(20)" json:"urgency"`
	PostedBy        string    `gorm:"index" json:"posted_by"`
	Remote          string    `gorm:"type:varchar(3)" json:"remote"` // Yes / No
	SalaryRange     string    `json:"salary_range"`
	SkillsCSV       string    `gorm:"column:skills" json:"skills_csv"` // raw comma-separated input, kept for display
	Skills          []Skill   `gorm:"many2many:job_skills" json:"skills,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// Skill is a global deduplicated tag vocabulary; rows are created implicitly
// the first time a job lists a new tag.
type Skill struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
}

func (s *Skill) TableName() string {
	return "skills"
}
