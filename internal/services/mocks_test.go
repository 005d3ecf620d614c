package services

import (
	"context"
	"github.com/orajb/cv-craft/internal/clients/posting"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/stretchr/testify/mock"
	"time"
)

type mockAiClient struct {
	mock.Mock
}

func (m *mockAiClient) GenerateResponse(ctx context.Context, request string) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

type mockPostings struct {
	mock.Mock
}

func (m *mockPostings) Fetch(ctx context.Context, pageURL string) (posting.Posting, error) {
	args := m.Called(ctx, pageURL)
	return args.Get(0).(posting.Posting), args.Error(1)
}

type mockRecords struct {
	record models.Record
}

func (m *mockRecords) Get(ctx context.Context) (*models.Record, error) {
	record := m.record
	return &record, nil
}

type mockTemplates struct {
	mock.Mock
}

func (m *mockTemplates) Get(ctx context.Context, id string) (*models.Template, error) {
	args := m.Called(ctx, id)
	template, _ := args.Get(0).(*models.Template)
	return template, args.Error(1)
}

func (m *mockTemplates) GetDefault(ctx context.Context) (*models.Template, error) {
	args := m.Called(ctx)
	template, _ := args.Get(0).(*models.Template)
	return template, args.Error(1)
}

type mockApplications struct {
	mock.Mock
}

func (m *mockApplications) SaveOrUpdateDraft(ctx context.Context, draftID string, app models.Application) (string, error) {
	args := m.Called(ctx, draftID, app)
	return args.String(0), args.Error(1)
}

func (m *mockApplications) UpdateHTML(ctx context.Context, id string, html string) error {
	return m.Called(ctx, id, html).Error(0)
}

func (m *mockApplications) CountByStatus(ctx context.Context) (map[models.Status]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[models.Status]int64)
	return counts, args.Error(1)
}

func (m *mockApplications) RemoveStaleDrafts(ctx context.Context, expirationTime time.Time) (int64, error) {
	args := m.Called(ctx, expirationTime)
	return args.Get(0).(int64), args.Error(1)
}
