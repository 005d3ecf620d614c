package repositories

import (
	"context"
	"github.com/orajb/cv-craft/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
	"time"
)

type templateRepository interface {
	Save(ctx context.Context, template models.Template, setDefault bool) (string, error)
	Update(ctx context.Context, template models.Template) error
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Template, error)
	GetDefault(ctx context.Context) (*models.Template, error)
	GetByName(ctx context.Context, name string) (*models.Template, error)
	List(ctx context.Context) ([]models.Template, error)
}

const defaultTemplateKey = "default"

// CachedTemplates keeps lookups of single templates in memory. Any write flushes
// the cache since it can move the default flag.
type CachedTemplates struct {
	repo  templateRepository
	cache *gocache.Cache
}

func NewCachedTemplates(repo templateRepository) *CachedTemplates {
	return &CachedTemplates{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedTemplates) Save(ctx context.Context, template models.Template, setDefault bool) (string, error) {
	defer c.cache.Flush()
	return c.repo.Save(ctx, template, setDefault)
}

func (c *CachedTemplates) Update(ctx context.Context, template models.Template) error {
	defer c.cache.Flush()
	return c.repo.Update(ctx, template)
}

func (c *CachedTemplates) Delete(ctx context.Context, id string) error {
	defer c.cache.Flush()
	return c.repo.Delete(ctx, id)
}

func (c *CachedTemplates) SetDefault(ctx context.Context, id string) error {
	defer c.cache.Flush()
	return c.repo.SetDefault(ctx, id)
}

func (c *CachedTemplates) Get(ctx context.Context, id string) (*models.Template, error) {
	return c.cached("id:"+id, func() (*models.Template, error) {
		return c.repo.Get(ctx, id)
	})
}

func (c *CachedTemplates) GetDefault(ctx context.Context) (*models.Template, error) {
	return c.cached(defaultTemplateKey, func() (*models.Template, error) {
		return c.repo.GetDefault(ctx)
	})
}

func (c *CachedTemplates) GetByName(ctx context.Context, name string) (*models.Template, error) {
	return c.repo.GetByName(ctx, name)
}

func (c *CachedTemplates) List(ctx context.Context) ([]models.Template, error) {
	return c.repo.List(ctx)
}

func (c *CachedTemplates) cached(key string, load func() (*models.Template, error)) (*models.Template, error) {
	if value, found := c.cache.Get(key); found {
		template := value.(models.Template)
		return &template, nil
	}

	template, err := load()
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, *template, gocache.DefaultExpiration)
	return template, nil
}
