package devotionals

import (
	"context"
	"time"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/devotionals"

// Devotional is a daily devotional entry.
type Devotional struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Passage   string    `json:"passage"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	Date      string    `json:"date"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateParams struct {
	Title   string `json:"title" validate:"required,max=200"`
	Passage string `json:"passage" validate:"required,max=120"`
	Body    string `json:"body" validate:"required"`
	Author  string `json:"author" validate:"max=120"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
}

type UpdateParams struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Passage   *string `json:"passage,omitempty" validate:"omitempty,max=120"`
	Body      *string `json:"body,omitempty"`
	Author    *string `json:"author,omitempty" validate:"omitempty,max=120"`
	Date      *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Published *bool   `json:"published,omitempty"`
}

// Service defines devotional content management.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Devotional], error)
	Get(ctx context.Context, id string) (*Devotional, error)
	Create(ctx context.Context, params CreateParams) (*Devotional, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Devotional, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api *apiclient.Client
}

// NewService wires the devotionals dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Devotional], error) {
	return rest.List[Devotional](ctx, s.api, basePath, params)
}

func (s *service) Get(ctx context.Context, id string) (*Devotional, error) {
	return rest.Get[Devotional](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Devotional, error) {
	return rest.Create[Devotional](ctx, s.api, basePath, params)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*Devotional, error) {
	return rest.Update[Devotional](ctx, s.api, rest.ResourcePath(basePath, id), params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(basePath, id))
}
