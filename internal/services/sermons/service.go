package sermons

import (
	"context"
	"time"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/sermons"

// Sermon is a recorded or scheduled sermon entry.
type Sermon struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Speaker     string    `json:"speaker"`
	Series      string    `json:"series"`
	Passage     string    `json:"passage"`
	Description string    `json:"description"`
	VideoURL    string    `json:"videoUrl"`
	AudioURL    string    `json:"audioUrl"`
	PreachedAt  string    `json:"preachedAt"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateParams struct {
	Title       string `json:"title" validate:"required,max=200"`
	Speaker     string `json:"speaker" validate:"required,max=120"`
	Series      string `json:"series" validate:"max=120"`
	Passage     string `json:"passage" validate:"max=120"`
	Description string `json:"description" validate:"max=5000"`
	VideoURL    string `json:"videoUrl" validate:"omitempty,url"`
	AudioURL    string `json:"audioUrl" validate:"omitempty,url"`
	PreachedAt  string `json:"preachedAt" validate:"required,datetime=2006-01-02"`
}

type UpdateParams struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Speaker     *string `json:"speaker,omitempty" validate:"omitempty,max=120"`
	Series      *string `json:"series,omitempty" validate:"omitempty,max=120"`
	Passage     *string `json:"passage,omitempty" validate:"omitempty,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	VideoURL    *string `json:"videoUrl,omitempty" validate:"omitempty,url"`
	AudioURL    *string `json:"audioUrl,omitempty" validate:"omitempty,url"`
	PreachedAt  *string `json:"preachedAt,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Service defines sermon library management.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Sermon], error)
	Get(ctx context.Context, id string) (*Sermon, error)
	Create(ctx context.Context, params CreateParams) (*Sermon, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Sermon, error)
	Publish(ctx context.Context, id string) (*Sermon, error)
	Unpublish(ctx context.Context, id string) (*Sermon, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api *apiclient.Client
}

// NewService wires the sermons dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Sermon], error) {
	return rest.List[Sermon](ctx, s.api, basePath, params)
}

func (s *service) Get(ctx context.Context, id string) (*Sermon, error) {
	return rest.Get[Sermon](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Sermon, error) {
	return rest.Create[Sermon](ctx, s.api, basePath, params)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*Sermon, error) {
	return rest.Update[Sermon](ctx, s.api, rest.ResourcePath(basePath, id), params)
}

func (s *service) Publish(ctx context.Context, id string) (*Sermon, error) {
	return rest.Action[Sermon](ctx, s.api, rest.ResourcePath(basePath, id)+"/publish", nil)
}

func (s *service) Unpublish(ctx context.Context, id string) (*Sermon, error) {
	return rest.Action[Sermon](ctx, s.api, rest.ResourcePath(basePath, id)+"/unpublish", nil)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(basePath, id))
}
