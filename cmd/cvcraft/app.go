package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/asaskevich/EventBus"
	"github.com/orajb/cv-craft/internal/config"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/orajb/cv-craft/internal/logger"
	"github.com/orajb/cv-craft/internal/metrics"
	"github.com/orajb/cv-craft/internal/render"
	"github.com/orajb/cv-craft/internal/repositories"
	"github.com/orajb/cv-craft/internal/services"
	log "github.com/sirupsen/logrus"
	"os"
	"path/filepath"
)

// app holds the wired dependencies shared by the commands.
type app struct {
	cfg          *config.Config
	db           *repositories.DbContext
	bus          EventBus.Bus
	records      *repositories.Records
	templates    *repositories.CachedTemplates
	applications *repositories.Applications
	stats        *services.StatsService
}

func openApp() (*app, error) {
	cfg := config.Get()

	logger.Setup(cfg.Logger)
	metrics.Register()

	dbContext, err := repositories.NewDbContext(cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("can't create db context: %w", err)
	}

	if err = dbContext.Migrate(); err != nil {
		_ = dbContext.Close()
		return nil, fmt.Errorf("can't migrate db context: %w", err)
	}

	bus := EventBus.New()
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	if _, err = services.NewDocumentJournal(bus); err != nil {
		_ = dbContext.Close()
		return nil, fmt.Errorf("can't subscribe document journal: %w", err)
	}

	return &app{
		cfg:          cfg,
		db:           dbContext,
		bus:          bus,
		records:      repositories.NewRecordsRepository(repositories.NewBlobsRepository(dbContext.DB)),
		templates:    repositories.NewCachedTemplates(repositories.NewTemplatesRepository(dbContext.DB)),
		applications: applications,
		stats:        services.NewStatsService(applications),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		log.Errorf("failed to close database: %v", err)
	}
	logger.Cleanup()
}

// withApp runs fn with an opened app and closes it afterwards.
func withApp(fn func(ctx context.Context, a *app) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(context.Background(), a)
}

// density parses a flag value, falling back to the configured default.
func (a *app) density(flag string) (render.Density, error) {
	if flag == "" {
		flag = a.cfg.Render.DefaultDensity
	}
	return render.ParseDensity(flag)
}

// resolveTemplate picks a template file, a stored template by id or name, the
// default template, or the built-in classic one, in that order.
func (a *app) resolveTemplate(ctx context.Context, ref, file string) (models.Template, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return models.Template{}, fmt.Errorf("failed to read template: %w", err)
		}
		return models.Template{Name: filepath.Base(file), HTML: string(data)}, nil
	}

	if ref != "" {
		template, err := a.templates.Get(ctx, ref)
		if errors.Is(err, repositories.ErrNotFound) {
			template, err = a.templates.GetByName(ctx, ref)
		}
		if err != nil {
			return models.Template{}, err
		}
		return *template, nil
	}

	template, err := a.templates.GetDefault(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return render.Builtins()[0], nil
	}
	if err != nil {
		return models.Template{}, err
	}
	return *template, nil
}
