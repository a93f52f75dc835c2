// Package types provides type definitions for structured data used throughout resumefy.
package types

// PresentSentinel is the literal end-date value marking an ongoing position.
// An empty end date means unknown, not ongoing.
const PresentSentinel = "Present"

// PersonalInfo holds contact details for a profile. Email is assigned at
// registration and never changed by profile updates.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Location  string `json:"location,omitempty"`
}

// EducationItem is one education entry in display order.
type EducationItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Major       string `json:"major,omitempty"`
	Minor       string `json:"minor,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`

	// Legacy client field names, folded in by Normalize.
	School         string `json:"school,omitempty"`
	Year           string `json:"year,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty"`
}

// WorkItem is one work-history entry. Description holds independent
// achievement statements in insertion order, not significance order.
type WorkItem struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description []string `json:"description"`

	// Legacy client field names, folded in by Normalize.
	BeginningDate    string   `json:"beginningdate,omitempty"`
	FinishDate       string   `json:"finishdate,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// ProjectItem is one project entry.
type ProjectItem struct {
	Title        string   `json:"title"`
	Tools        []string `json:"tools"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Descriptions []string `json:"descriptions"`

	// Legacy client field names, folded in by Normalize.
	Stack   []string `json:"stack,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Profile is the full user-owned resume profile, persisted as a single
// document keyed by user id and replaced wholesale on each save.
type Profile struct {
	Personal       PersonalInfo    `json:"personal"`
	Summary        string          `json:"summary,omitempty"`
	Education      []EducationItem `json:"education"`
	Work           []WorkItem      `json:"work"`
	Projects       []ProjectItem   `json:"projects"`
	Skills         []string        `json:"skills"`
	Certifications []string        `json:"certifications"`
	Websites       []string        `json:"websites"`
}

// EmptyProfile returns a profile with all list fields initialized empty,
// the shape created at registration.
func EmptyProfile() *Profile {
	return &Profile{
		Education:      []EducationItem{},
		Work:           []WorkItem{},
		Projects:       []ProjectItem{},
		Skills:         []string{},
		Certifications: []string{},
		Websites:       []string{},
	}
}

// JobTarget is the request-scoped description of the job being targeted.
// It is never persisted.
type JobTarget struct {
	Title            string `json:"title,omitempty"`
	Description      string `json:"description"`
	Responsibilities string `json:"responsibilities,omitempty"`
}
