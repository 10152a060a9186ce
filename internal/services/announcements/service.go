package announcements

import (
	"context"
	"time"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/announcements"

// Announcement is a congregation-wide notice.
type Announcement struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Pinned    bool       `json:"pinned"`
	StartsAt  *time.Time `json:"startsAt"`
	EndsAt    *time.Time `json:"endsAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

type CreateParams struct {
	Title    string     `json:"title" validate:"required,max=200"`
	Body     string     `json:"body" validate:"required"`
	Pinned   bool       `json:"pinned"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}

type UpdateParams struct {
	Title    *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Body     *string    `json:"body,omitempty"`
	Pinned   *bool      `json:"pinned,omitempty"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}

// Service defines announcement management.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Announcement], error)
	Get(ctx context.Context, id string) (*Announcement, error)
	Create(ctx context.Context, params CreateParams) (*Announcement, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Announcement, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api *apiclient.Client
}

// NewService wires the announcements dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Announcement], error) {
	return rest.List[Announcement](ctx, s.api, basePath, params)
}

func (s *service) Get(ctx context.Context, id string) (*Announcement, error) {
	return rest.Get[Announcement](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Announcement, error) {
	return rest.Create[Announcement](ctx, s.api, basePath, params)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*Announcement, error) {
	return rest.Update[Announcement](ctx, s.api, rest.ResourcePath(basePath, id), params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(basePath, id))
}
