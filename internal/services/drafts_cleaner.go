package services

import (
	"context"
	"github.com/orajb/cv-craft/internal/logger"
	"github.com/orajb/cv-craft/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"time"
)

type DraftCleanupRepository interface {
	RemoveStaleDrafts(ctx context.Context, expirationTime time.Time) (int64, error)
}

// DraftsCleaner removes drafts nobody touched for the configured number of days.
type DraftsCleaner struct {
	drafts               DraftCleanupRepository
	cron                 *cron.Cron
	expirationTimeInDays int
	now                  func() time.Time
}

func NewDraftsCleaner(drafts DraftCleanupRepository, expirationInDays int) (*DraftsCleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}

	return &DraftsCleaner{
		drafts:               drafts,
		cron:                 cron.New(),
		expirationTimeInDays: expirationInDays,
		now:                  time.Now,
	}, nil
}

// Start schedules a daily cleanup at midnight.
func (dc *DraftsCleaner) Start() error {
	_, err := dc.cron.AddFunc("0 0 * * *", func() {
		_, _ = dc.Clean(context.Background())
	})
	if err != nil {
		return err
	}

	dc.cron.Start()
	log.Infof("drafts cleaner started, expiration in days: %d", dc.expirationTimeInDays)
	return nil
}

func (dc *DraftsCleaner) Stop() {
	<-dc.cron.Stop().Done()
}

func (dc *DraftsCleaner) Clean(ctx context.Context) (int64, error) {
	expirationTime := dc.now().Add(-time.Duration(dc.expirationTimeInDays) * 24 * time.Hour)
	rowsAffected, err := dc.drafts.RemoveStaleDrafts(ctx, expirationTime)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to clean stale drafts: %v", err)
		return 0, err
	}

	metrics.DraftsCleaned.Add(float64(rowsAffected))
	log.Infof("stale drafts were cleaned at %v, affected rows: %v", dc.now(), rowsAffected)
	return rowsAffected, nil
}
