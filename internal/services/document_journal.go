package services

import (
	"github.com/asaskevich/EventBus"
	"github.com/orajb/cv-craft/internal/events"
	log "github.com/sirupsen/logrus"
)

// DocumentJournal logs what happened to stored documents.
type DocumentJournal struct{}

func NewDocumentJournal(bus EventBus.Bus) (*DocumentJournal, error) {
	j := &DocumentJournal{}

	err := bus.Subscribe(events.DocumentGeneratedTopic, j.onDocumentGenerated)
	if err != nil {
		return nil, err
	}
	err = bus.Subscribe(events.DocumentEditedTopic, j.onDocumentEdited)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (j *DocumentJournal) onDocumentGenerated(event events.DocumentGenerated) {
	log.WithFields(log.Fields{
		"application": event.ApplicationID,
		"layout":      event.Layout,
	}).Infof("draft stored for %s at %s", event.Role, event.Company)
}

func (j *DocumentJournal) onDocumentEdited(event events.DocumentEdited) {
	log.WithField("application", event.ApplicationID).Infof("%s edited", event.Field)
}
