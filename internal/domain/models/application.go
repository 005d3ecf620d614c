package models

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusDraft        Status = "draft"
	StatusCreated      Status = "created"
	StatusApplied      Status = "applied"
	StatusInterviewing Status = "interviewing"
	StatusRejected     Status = "rejected"
	StatusOffer        Status = "offer"
	StatusAccepted     Status = "accepted"
	StatusWithdrawn    Status = "withdrawn"
)

// Statuses lists every status in pipeline order.
var Statuses = []Status{
	StatusDraft, StatusCreated, StatusApplied, StatusInterviewing,
	StatusRejected, StatusOffer, StatusAccepted, StatusWithdrawn,
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Statuses {
		if status == known {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid application status %q", s)
}

// IsClosed reports whether the application left the pipeline.
func (s Status) IsClosed() bool {
	return s == StatusRejected || s == StatusAccepted || s == StatusWithdrawn
}

// WasSubmitted reports whether the application reached the employer.
func (s Status) WasSubmitted() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusRejected, StatusOffer, StatusAccepted:
		return true
	}
	return false
}

const (
	DefaultCompany = "Untitled Focus"
	DefaultRole    = "General"
)

type Application struct {
	ID             string `gorm:"primaryKey"`
	Company        string `validate:"required"`
	Role           string `validate:"required"`
	RoleURL        string `validate:"omitempty,url"`
	JobDescription string
	HTML           string `gorm:"column:html"`
	TemplateID     string
	Notes          string
	Status         Status `gorm:"index" validate:"required"`
	CreatedAt      time.Time
	UpdatedAt      *time.Time `gorm:"autoUpdateTime:false"`
}

// ApplyDefaults fills the labels the user left empty.
func (a *Application) ApplyDefaults() {
	if strings.TrimSpace(a.Company) == "" {
		a.Company = DefaultCompany
	}
	if strings.TrimSpace(a.Role) == "" {
		a.Role = DefaultRole
	}
	if a.Status == "" {
		a.Status = StatusCreated
	}
}

// LastTouched is the time of the latest change.
func (a *Application) LastTouched() time.Time {
	if a.UpdatedAt != nil {
		return *a.UpdatedAt
	}
	return a.CreatedAt
}
