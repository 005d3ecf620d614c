package models

import "time"

// Present is the end date of a role that is still held.
const Present = "Present"

// Item is implemented by every list entry of a Record.
type Item interface {
	Meta() *ItemMeta
}

type ItemMeta struct {
	ID        string     `json:"id" yaml:"id,omitempty"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func (m *ItemMeta) Meta() *ItemMeta {
	return m
}

// Record is the whole career history of the user. It is stored as one JSON
// document and only ever changed field by field.
type Record struct {
	Contact         Contact          `json:"contact" yaml:"contact"`
	Summary         string           `json:"summary" yaml:"summary"`
	WorkExperiences []WorkExperience `json:"work_experiences" yaml:"work_experiences"`
	Education       []Education      `json:"education" yaml:"education"`
	Skills          Skills           `json:"skills" yaml:"skills"`
	Projects        []Project        `json:"projects" yaml:"projects"`
	Certifications  []Certification  `json:"certifications" yaml:"certifications"`
	Awards          []Award          `json:"awards" yaml:"awards"`
}

func NewRecord() *Record {
	return &Record{
		WorkExperiences: []WorkExperience{},
		Education:       []Education{},
		Skills:          NewSkills(),
		Projects:        []Project{},
		Certifications:  []Certification{},
		Awards:          []Award{},
	}
}

type Contact struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" yaml:"phone"`
	Location string `json:"location" yaml:"location"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	GitHub   string `json:"github" yaml:"github"`
	Website  string `json:"website" yaml:"website"`
}

type WorkExperience struct {
	ItemMeta  `yaml:",inline"`
	Company   string   `json:"company" yaml:"company" validate:"required"`
	Role      string   `json:"role" yaml:"role" validate:"required"`
	StartDate string   `json:"start_date" yaml:"start_date"`
	EndDate   string   `json:"end_date" yaml:"end_date"`
	Location  string   `json:"location" yaml:"location"`
	Bullets   []string `json:"bullets" yaml:"bullets"`
	IsCurrent bool     `json:"is_current" yaml:"is_current"`
}

// Normalize enforces the end date of a current role.
func (w *WorkExperience) Normalize() {
	if w.IsCurrent {
		w.EndDate = Present
	}
}

type Education struct {
	ItemMeta    `yaml:",inline"`
	Institution string   `json:"institution" yaml:"institution" validate:"required"`
	Degree      string   `json:"degree" yaml:"degree"`
	Field       string   `json:"field" yaml:"field"`
	StartDate   string   `json:"start_date" yaml:"start_date"`
	EndDate     string   `json:"end_date" yaml:"end_date"`
	GPA         string   `json:"gpa" yaml:"gpa"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
}

type Skills struct {
	Technical []string `json:"technical" yaml:"technical"`
	Tools     []string `json:"tools" yaml:"tools"`
	Soft      []string `json:"soft" yaml:"soft"`
	Languages []string `json:"languages" yaml:"languages"`
}

func NewSkills() Skills {
	return Skills{Technical: []string{}, Tools: []string{}, Soft: []string{}, Languages: []string{}}
}

// SkillCategory is one labelled group of skills in display order.
type SkillCategory struct {
	Name  string
	Items []string
}

func (s Skills) Categories() []SkillCategory {
	return []SkillCategory{
		{Name: "Technical", Items: s.Technical},
		{Name: "Tools", Items: s.Tools},
		{Name: "Soft Skills", Items: s.Soft},
		{Name: "Languages", Items: s.Languages},
	}
}

func (s Skills) IsEmpty() bool {
	return len(s.Technical)+len(s.Tools)+len(s.Soft)+len(s.Languages) == 0
}

type Project struct {
	ItemMeta     `yaml:",inline"`
	Name         string   `json:"name" yaml:"name" validate:"required"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	URL          string   `json:"url" yaml:"url" validate:"omitempty,url"`
	Bullets      []string `json:"bullets" yaml:"bullets"`
}

type Certification struct {
	ItemMeta `yaml:",inline"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	Issuer   string `json:"issuer" yaml:"issuer"`
	Date     string `json:"date" yaml:"date"`
	URL      string `json:"url" yaml:"url" validate:"omitempty,url"`
	Expiry   string `json:"expiry" yaml:"expiry"`
}

type Award struct {
	ItemMeta `yaml:",inline"`
	Text     string `json:"text" yaml:"text" validate:"required"`
}
