package services

import (
	"context"
	"errors"
	"github.com/asaskevich/EventBus"
	"github.com/orajb/cv-craft/internal/clients/posting"
	"github.com/orajb/cv-craft/internal/document"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/orajb/cv-craft/internal/events"
	"github.com/orajb/cv-craft/internal/logger"
	"github.com/orajb/cv-craft/internal/metrics"
	"github.com/orajb/cv-craft/internal/render"
	"github.com/orajb/cv-craft/internal/repositories"
	log "github.com/sirupsen/logrus"
	"strings"
	"time"
)

var (
	ErrNoTemplate       = errors.New("template not found")
	ErrEmptyResponse    = errors.New("model response contains no document")
	ErrNoJobDescription = errors.New("job description or posting url is required")
)

type aiClient interface {
	GenerateResponse(ctx context.Context, request string) (string, error)
}

type postingFetcher interface {
	Fetch(ctx context.Context, pageURL string) (posting.Posting, error)
}

type recordRepository interface {
	Get(ctx context.Context) (*models.Record, error)
}

type templateRepository interface {
	Get(ctx context.Context, id string) (*models.Template, error)
	GetDefault(ctx context.Context) (*models.Template, error)
}

type draftRepository interface {
	SaveOrUpdateDraft(ctx context.Context, draftID string, app models.Application) (string, error)
}

type TailorRequest struct {
	JobDescription string
	// PostingURL is fetched when JobDescription is empty.
	PostingURL   string
	Company      string
	Role         string
	Instructions string
	TemplateID   string
	// DraftID is overwritten instead of storing a new draft while it is still a draft.
	DraftID string
	OnePage bool
	Density render.Density
}

type TailorResult struct {
	ApplicationID string
	HTML          string
	Layout        document.Shape
	Density       render.Density
	QuickEdit     bool
}

type Tailor struct {
	bus            EventBus.Bus
	ai             aiClient
	postings       postingFetcher
	records        recordRepository
	templates      templateRepository
	drafts         draftRepository
	defaultDensity render.Density
}

func NewTailor(bus EventBus.Bus, ai aiClient, postings postingFetcher, records recordRepository,
	templates templateRepository, drafts draftRepository, defaultDensity render.Density) *Tailor {

	return &Tailor{
		bus:            bus,
		ai:             ai,
		postings:       postings,
		records:        records,
		templates:      templates,
		drafts:         drafts,
		defaultDensity: defaultDensity,
	}
}

// Generate asks the model for a document tailored to the job and stores it as a draft.
func (t *Tailor) Generate(ctx context.Context, req TailorRequest) (*TailorResult, error) {

	if err := t.resolveJobDescription(ctx, &req); err != nil {
		return nil, err
	}

	record, err := t.records.Get(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to load record: %v", err)
		return nil, err
	}

	template, err := t.template(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}

	prompt := BuildTailorPrompt(PromptInput{
		Record:         *record,
		JobDescription: req.JobDescription,
		Instructions:   req.Instructions,
		TemplateHTML:   template.HTML,
		OnePage:        req.OnePage,
	})

	start := time.Now()
	response, err := t.ai.GenerateResponse(ctx, prompt)
	metrics.AIGenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).Errorf("failed to generate document: %v", err)
		return nil, err
	}

	html := document.FromResponse(response)
	if !strings.Contains(html, "<") {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).Errorf("model response has no markup: %.80q", response)
		return nil, ErrEmptyResponse
	}

	layout := document.ShapeFlat
	if outline, err := document.Inspect(html); err == nil {
		layout = outline.Layout
	}

	id, err := t.drafts.SaveOrUpdateDraft(ctx, req.DraftID, models.Application{
		Company:        req.Company,
		Role:           req.Role,
		RoleURL:        req.PostingURL,
		JobDescription: req.JobDescription,
		HTML:           html,
		TemplateID:     template.ID,
	})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to save draft: %v", err)
		return nil, err
	}

	metrics.DocumentsRendered.WithLabelValues(string(layout)).Inc()
	t.bus.Publish(events.DocumentGeneratedTopic, events.DocumentGenerated{
		ApplicationID: id,
		Company:       req.Company,
		Role:          req.Role,
		Layout:        string(layout),
	})
	log.Infof("generated document %s for %q at %q", id, req.Role, req.Company)

	return &TailorResult{
		ApplicationID: id,
		HTML:          html,
		Layout:        layout,
		Density:       t.density(req),
		QuickEdit:     render.QuickEditAvailable(html),
	}, nil
}

func (t *Tailor) resolveJobDescription(ctx context.Context, req *TailorRequest) error {
	if strings.TrimSpace(req.JobDescription) != "" {
		return nil
	}
	if req.PostingURL == "" || t.postings == nil {
		return ErrNoJobDescription
	}

	fetched, err := t.postings.Fetch(ctx, req.PostingURL)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeFetch).Errorf("failed to fetch posting %s: %v", req.PostingURL, err)
		return err
	}

	req.JobDescription = fetched.Description
	if req.Role == "" {
		req.Role = fetched.Title
	}
	if req.Company == "" {
		req.Company = fetched.Company
	}
	return nil
}

// template returns the requested template, the default one, or an empty
// template when none is stored so the model chooses the layout.
func (t *Tailor) template(ctx context.Context, id string) (models.Template, error) {
	if id != "" {
		template, err := t.templates.Get(ctx, id)
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Template{}, ErrNoTemplate
		}
		if err != nil {
			return models.Template{}, err
		}
		return *template, nil
	}

	template, err := t.templates.GetDefault(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.Template{}, nil
	}
	if err != nil {
		return models.Template{}, err
	}
	return *template, nil
}

// density tightens one page documents unless a density was chosen.
func (t *Tailor) density(req TailorRequest) render.Density {
	switch {
	case req.Density != "":
		return req.Density
	case req.OnePage:
		return render.DensityCompact
	case t.defaultDensity != "":
		return t.defaultDensity
	}
	return render.DensityNormal
}
