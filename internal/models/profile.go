package models

// TimelineEvent is an entry in the work or education history
type TimelineEvent struct {
	Year        string `json:"year" yaml:"year"`
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company,omitempty" yaml:"company,omitempty"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"` // work, education, award
}

// Profile describes the portfolio owner
type Profile struct {
	Name       string          `json:"name" yaml:"name"`
	Email      string          `json:"email" yaml:"email"`
	Phone      string          `json:"phone,omitempty" yaml:"phone,omitempty"`
	LinkedIn   string          `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Roles      []string        `json:"roles" yaml:"roles"`
	Bio        string          `json:"bio" yaml:"bio"`
	Story      string          `json:"story" yaml:"story"`
	Experience []TimelineEvent `json:"experience" yaml:"experience"`
	Education  []TimelineEvent `json:"education" yaml:"education"`
}
