package services

import (
	"context"
	"github.com/orajb/cv-craft/internal/domain/models"
	"math"
)

type statusCounter interface {
	CountByStatus(ctx context.Context) (map[models.Status]int64, error)
}

type ApplicationStats struct {
	Total    int64                   `json:"total"`
	ByStatus map[models.Status]int64 `json:"by_status"`
	// Active counts applications that did not leave the pipeline.
	Active int64 `json:"active"`
	// SuccessRate and InterviewRate are percentages of submitted applications.
	SuccessRate   float64 `json:"success_rate"`
	InterviewRate float64 `json:"interview_rate"`
}

type StatsService struct {
	applications statusCounter
}

func NewStatsService(applications statusCounter) *StatsService {
	return &StatsService{applications: applications}
}

func (s *StatsService) Get(ctx context.Context) (*ApplicationStats, error) {
	counts, err := s.applications.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return computeStats(counts), nil
}

func computeStats(counts map[models.Status]int64) *ApplicationStats {
	stats := &ApplicationStats{ByStatus: make(map[models.Status]int64, len(models.Statuses))}

	var submitted int64
	for _, status := range models.Statuses {
		n := counts[status]
		stats.ByStatus[status] = n
		stats.Total += n
		if !status.IsClosed() {
			stats.Active += n
		}
		if status.WasSubmitted() {
			submitted += n
		}
	}

	if submitted > 0 {
		offers := counts[models.StatusOffer] + counts[models.StatusAccepted]
		interviews := counts[models.StatusInterviewing] + offers
		stats.SuccessRate = percent(offers, submitted)
		stats.InterviewRate = percent(interviews, submitted)
	}
	return stats
}

func percent(part, total int64) float64 {
	return math.Round(float64(part)/float64(total)*1000) / 10
}
