package testimonies

import (
	"context"
	"time"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/testimonies"

// Testimony is a member-submitted story pending moderation.
type Testimony struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	AuthorName string    `json:"authorName"`
	Approved   bool      `json:"approved"`
	Featured   bool      `json:"featured"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateParams struct {
	Title      string `json:"title" validate:"required,max=200"`
	Body       string `json:"body" validate:"required"`
	AuthorName string `json:"authorName" validate:"required,max=120"`
}

type UpdateParams struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Body     *string `json:"body,omitempty"`
	Approved *bool   `json:"approved,omitempty"`
	Featured *bool   `json:"featured,omitempty"`
}

// Service defines testimony moderation.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Testimony], error)
	Get(ctx context.Context, id string) (*Testimony, error)
	Create(ctx context.Context, params CreateParams) (*Testimony, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Testimony, error)
	Approve(ctx context.Context, id string) (*Testimony, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api *apiclient.Client
}

// NewService wires the testimonies dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Testimony], error) {
	return rest.List[Testimony](ctx, s.api, basePath, params)
}

func (s *service) Get(ctx context.Context, id string) (*Testimony, error) {
	return rest.Get[Testimony](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Testimony, error) {
	return rest.Create[Testimony](ctx, s.api, basePath, params)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*Testimony, error) {
	return rest.Update[Testimony](ctx, s.api, rest.ResourcePath(basePath, id), params)
}

func (s *service) Approve(ctx context.Context, id string) (*Testimony, error) {
	return rest.Action[Testimony](ctx, s.api, rest.ResourcePath(basePath, id)+"/approve", nil)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(basePath, id))
}
