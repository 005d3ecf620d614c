package repositories

import (
	"context"
	"encoding/json"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"sync"
	"time"
)

const recordKey = "experiences"

type blobStore interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// Records keeps the career record as a single JSON document. Every change is a
// load, modify and save cycle, serialized by a mutex.
type Records struct {
	store blobStore
	mu    sync.Mutex
	now   func() time.Time
}

func NewRecordsRepository(store blobStore) *Records {
	return &Records{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// Get returns the record, creating an empty one on first access.
func (r *Records) Get(ctx context.Context) (*models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *Records) load(ctx context.Context) (*models.Record, error) {
	data, err := r.store.Load(ctx, recordKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load record")
	}

	if data == nil {
		record := models.NewRecord()
		if err = r.save(ctx, record); err != nil {
			return nil, err
		}
		return record, nil
	}

	record := models.NewRecord()
	if err = json.Unmarshal(data, record); err != nil {
		return nil, errors.Wrap(err, "failed to decode record")
	}
	return record, nil
}

func (r *Records) save(ctx context.Context, record *models.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to encode record")
	}
	return errors.Wrap(r.store.Save(ctx, recordKey, data), "failed to save record")
}

func (r *Records) update(ctx context.Context, change func(record *models.Record) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err = change(record); err != nil {
		return err
	}
	return r.save(ctx, record)
}

// Import replaces the record. Items without an identifier get a new one.
func (r *Records) Import(ctx context.Context, record models.Record) error {
	now := r.now()
	for i := range record.WorkExperiences {
		record.WorkExperiences[i].Normalize()
	}
	if err := validateAll(record); err != nil {
		return err
	}

	stampAll(record.WorkExperiences, now)
	stampAll(record.Education, now)
	stampAll(record.Projects, now)
	stampAll(record.Certifications, now)
	stampAll(record.Awards, now)

	return r.update(ctx, func(current *models.Record) error {
		*current = record
		return nil
	})
}

func (r *Records) UpdateContact(ctx context.Context, contact models.Contact) error {
	if err := models.Validate(contact); err != nil {
		return errors.Wrap(err, "invalid contact")
	}
	return r.update(ctx, func(record *models.Record) error {
		record.Contact = contact
		return nil
	})
}

func (r *Records) UpdateSummary(ctx context.Context, summary string) error {
	return r.update(ctx, func(record *models.Record) error {
		record.Summary = summary
		return nil
	})
}

func (r *Records) UpdateSkills(ctx context.Context, skills models.Skills) error {
	return r.update(ctx, func(record *models.Record) error {
		record.Skills = skills
		return nil
	})
}

func (r *Records) AddWorkExperience(ctx context.Context, exp models.WorkExperience) (string, error) {
	exp.Normalize()
	if err := models.Validate(exp); err != nil {
		return "", errors.Wrap(err, "invalid work experience")
	}

	var id string
	err := r.update(ctx, func(record *models.Record) error {
		record.WorkExperiences, id = addItem(record.WorkExperiences, exp, r.now())
		return nil
	})
	return id, err
}

func (r *Records) UpdateWorkExperience(ctx context.Context, exp models.WorkExperience) error {
	exp.Normalize()
	if err := models.Validate(exp); err != nil {
		return errors.Wrap(err, "invalid work experience")
	}
	return r.update(ctx, func(record *models.Record) error {
		return updateItem(record.WorkExperiences, exp, r.now())
	})
}

func (r *Records) DeleteWorkExperience(ctx context.Context, id string) error {
	return r.update(ctx, func(record *models.Record) (err error) {
		record.WorkExperiences, err = removeItem(record.WorkExperiences, id)
		return err
	})
}

func (r *Records) AddEducation(ctx context.Context, edu models.Education) (string, error) {
	if err := models.Validate(edu); err != nil {
		return "", errors.Wrap(err, "invalid education")
	}

	var id string
	err := r.update(ctx, func(record *models.Record) error {
		record.Education, id = addItem(record.Education, edu, r.now())
		return nil
	})
	return id, err
}

func (r *Records) UpdateEducation(ctx context.Context, edu models.Education) error {
	if err := models.Validate(edu); err != nil {
		return errors.Wrap(err, "invalid education")
	}
	return r.update(ctx, func(record *models.Record) error {
		return updateItem(record.Education, edu, r.now())
	})
}

func (r *Records) DeleteEducation(ctx context.Context, id string) error {
	return r.update(ctx, func(record *models.Record) (err error) {
		record.Education, err = removeItem(record.Education, id)
		return err
	})
}

func (r *Records) AddProject(ctx context.Context, project models.Project) (string, error) {
	if err := models.Validate(project); err != nil {
		return "", errors.Wrap(err, "invalid project")
	}

	var id string
	err := r.update(ctx, func(record *models.Record) error {
		record.Projects, id = addItem(record.Projects, project, r.now())
		return nil
	})
	return id, err
}

func (r *Records) UpdateProject(ctx context.Context, project models.Project) error {
	if err := models.Validate(project); err != nil {
		return errors.Wrap(err, "invalid project")
	}
	return r.update(ctx, func(record *models.Record) error {
		return updateItem(record.Projects, project, r.now())
	})
}

func (r *Records) DeleteProject(ctx context.Context, id string) error {
	return r.update(ctx, func(record *models.Record) (err error) {
		record.Projects, err = removeItem(record.Projects, id)
		return err
	})
}

func (r *Records) AddCertification(ctx context.Context, cert models.Certification) (string, error) {
	if err := models.Validate(cert); err != nil {
		return "", errors.Wrap(err, "invalid certification")
	}

	var id string
	err := r.update(ctx, func(record *models.Record) error {
		record.Certifications, id = addItem(record.Certifications, cert, r.now())
		return nil
	})
	return id, err
}

func (r *Records) UpdateCertification(ctx context.Context, cert models.Certification) error {
	if err := models.Validate(cert); err != nil {
		return errors.Wrap(err, "invalid certification")
	}
	return r.update(ctx, func(record *models.Record) error {
		return updateItem(record.Certifications, cert, r.now())
	})
}

func (r *Records) DeleteCertification(ctx context.Context, id string) error {
	return r.update(ctx, func(record *models.Record) (err error) {
		record.Certifications, err = removeItem(record.Certifications, id)
		return err
	})
}

func (r *Records) AddAward(ctx context.Context, award models.Award) (string, error) {
	if err := models.Validate(award); err != nil {
		return "", errors.Wrap(err, "invalid award")
	}

	var id string
	err := r.update(ctx, func(record *models.Record) error {
		record.Awards, id = addItem(record.Awards, award, r.now())
		return nil
	})
	return id, err
}

func (r *Records) UpdateAward(ctx context.Context, award models.Award) error {
	if err := models.Validate(award); err != nil {
		return errors.Wrap(err, "invalid award")
	}
	return r.update(ctx, func(record *models.Record) error {
		return updateItem(record.Awards, award, r.now())
	})
}

func (r *Records) DeleteAward(ctx context.Context, id string) error {
	return r.update(ctx, func(record *models.Record) (err error) {
		record.Awards, err = removeItem(record.Awards, id)
		return err
	})
}

// itemPtr is satisfied by pointers to the list item types of a record.
type itemPtr[T any] interface {
	*T
	models.Item
}

func addItem[T any, P itemPtr[T]](list []T, item T, now time.Time) ([]T, string) {
	meta := P(&item).Meta()
	meta.ID = models.NewID()
	meta.CreatedAt = now
	meta.UpdatedAt = nil
	return append(list, item), meta.ID
}

// updateItem replaces the item with the same identifier, keeping its creation time.
func updateItem[T any, P itemPtr[T]](list []T, item T, now time.Time) error {
	meta := P(&item).Meta()
	for i := range list {
		existing := P(&list[i]).Meta()
		if existing.ID != meta.ID {
			continue
		}
		meta.CreatedAt = existing.CreatedAt
		meta.UpdatedAt = &now
		list[i] = item
		return nil
	}
	return errors.Wrapf(ErrNotFound, "item %s", meta.ID)
}

func removeItem[T any, P itemPtr[T]](list []T, id string) ([]T, error) {
	for i := range list {
		if P(&list[i]).Meta().ID == id {
			return append(list[:i:i], list[i+1:]...), nil
		}
	}
	return list, errors.Wrapf(ErrNotFound, "item %s", id)
}

func stampAll[T any, P itemPtr[T]](list []T, now time.Time) {
	for i := range list {
		meta := P(&list[i]).Meta()
		if meta.ID == "" {
			meta.ID = models.NewID()
		}
		if meta.CreatedAt.IsZero() {
			meta.CreatedAt = now
		}
	}
}

func validateAll(record models.Record) error {
	if err := models.Validate(record.Contact); err != nil {
		return errors.Wrap(err, "invalid contact")
	}
	for _, list := range [][]any{
		lo.ToAnySlice(record.WorkExperiences), lo.ToAnySlice(record.Education), lo.ToAnySlice(record.Projects),
		lo.ToAnySlice(record.Certifications), lo.ToAnySlice(record.Awards),
	} {
		for _, item := range list {
			if err := models.Validate(item); err != nil {
				return errors.Wrap(err, "invalid record item")
			}
		}
	}
	return nil
}
