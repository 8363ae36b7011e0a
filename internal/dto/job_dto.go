package dto

import (
	"strings"
	"time"

	"github.com/sixtyday/jobboard/internal/model"
)

// FilterAll is the select-box sentinel meaning "no filter" for a criterion.
// An empty value means the same thing.
const FilterAll = "All"

// JobFilter holds the browse criteria; all set criteria are ANDed.
type JobFilter struct {
	Skill    string `query:"skill"`    // exact match on tag name
	Location string `query:"location"` // case-insensitive substring
	Remote   string `query:"remote"`   // Yes / No
	Visa     string `query:"visa"`     // Yes / No
	Urgency  string `query:"urgency"`  // exact match
	Title    string `query:"title"`    // case-insensitive substring
}

func filterSet(v string) bool {
	return v != "" && v != FilterAll
}

// IsZero reports whether no criterion is set, in which case filtering is
// equivalent to a plain newest-first listing.
func (f JobFilter) IsZero() bool {
	return !filterSet(f.Skill) && f.Location == "" && !filterSet(f.Remote) &&
		!filterSet(f.Visa) && !filterSet(f.Urgency) && f.Title == ""
}

type CreateJobRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	VisaSponsorship string `json:"visa_sponsorship"`
	Urgency         string `json:"urgency"`
	Remote          string `json:"remote"`
	SalaryRange     string `json:"salary_range"`
	Skills          string `json:"skills"` // comma-separated tag list
	PostedBy        string `json:"posted_by"`
}

type JobResponse struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	VisaSponsorship string    `json:"visa_sponsorship"`
	Urgency         string    `json:"urgency"`
	PostedBy        string    `json:"posted_by"`
	Remote          string    `json:"remote"`
	SalaryRange     string    `json:"salary_range"`
	Skills          string    `json:"skills"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewJobResponse(j model.Job) JobResponse {
	names := make([]string, 0, len(j.Skills))
	for _, s := range j.Skills {
		names = append(names, s.Name)
	}
	return JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Location:        j.Location,
		VisaSponsorship: j.VisaSponsorship,
		Urgency:         j.Urgency,
		PostedBy:        j.PostedBy,
		Remote:          j.Remote,
		SalaryRange:     j.SalaryRange,
		Skills:          strings.Join(names, ", "),
		CreatedAt:       j.CreatedAt,
	}
}

func NewJobResponses(jobs []model.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
