package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/orajb/cv-craft/internal/document"
	"github.com/orajb/cv-craft/internal/events"
	"github.com/orajb/cv-craft/internal/logger"
	"github.com/orajb/cv-craft/internal/metrics"
	"github.com/orajb/cv-craft/internal/render"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strconv"
)

const (
	FieldSummary = "summary"
	FieldBullets = "bullets"
)

type documentStore interface {
	UpdateHTML(ctx context.Context, id string, html string) error
}

// EditSession holds the state of quick edits on one document. Every change goes
// through the field updater, and a change that leaves the document untouched
// is reported as not applied. Documents of an application are stored before
// the session takes the change.
type EditSession struct {
	bus           EventBus.Bus
	store         documentStore
	applicationID string
	doc           string
	density       render.Density
	paginate      bool
	edits         int
}

// NewEditSession starts a session. With an empty applicationID the document is
// only kept in memory and store may be nil.
func NewEditSession(bus EventBus.Bus, store documentStore, applicationID, doc string) *EditSession {
	return &EditSession{
		bus:           bus,
		store:         store,
		applicationID: applicationID,
		doc:           doc,
		density:       render.DensityNormal,
	}
}

func (s *EditSession) Document() string {
	return s.doc
}

// Available reports whether the document has anything to edit in place.
func (s *EditSession) Available() bool {
	return render.QuickEditAvailable(s.doc)
}

func (s *EditSession) Summary() string {
	return document.ExtractSummary(s.doc)
}

func (s *EditSession) Entries() []document.Entry {
	return document.ExtractEntries(s.doc)
}

// Edits is the number of applied changes.
func (s *EditSession) Edits() int {
	return s.edits
}

func (s *EditSession) SetLayout(density render.Density, paginate bool) {
	s.density = density
	s.paginate = paginate
}

// Preview is the document with the session layout applied. The stored
// document itself never carries layout styles.
func (s *EditSession) Preview() string {
	return render.ApplyLayout(s.doc, s.density, s.paginate)
}

func (s *EditSession) SetSummary(ctx context.Context, text string) (bool, error) {
	return s.apply(ctx, FieldSummary, document.UpdateSummary(s.doc, text))
}

func (s *EditSession) SetBullets(ctx context.Context, index int, bullets []string) (bool, error) {
	return s.apply(ctx, FieldBullets, document.UpdateEntryBullets(s.doc, index, bullets))
}

func (s *EditSession) apply(ctx context.Context, field, updated string) (bool, error) {
	if updated == s.doc {
		metrics.QuickEdits.WithLabelValues(field, strconv.FormatBool(false)).Inc()
		log.Debugf("quick edit of %s left document %s unchanged", field, s.applicationID)
		return false, nil
	}

	if s.applicationID != "" {
		if err := s.store.UpdateHTML(ctx, s.applicationID, updated); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to store edited %s of application %s: %v", field, s.applicationID, err)
			return false, errors.Wrapf(err, "failed to store edited %s", field)
		}
	}

	metrics.QuickEdits.WithLabelValues(field, strconv.FormatBool(true)).Inc()
	s.doc = updated
	s.edits++
	if s.bus != nil && s.applicationID != "" {
		s.bus.Publish(events.DocumentEditedTopic, events.DocumentEdited{
			ApplicationID: s.applicationID,
			Field:         field,
			HTML:          updated,
		})
	}
	return true, nil
}
