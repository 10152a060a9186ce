package books

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/books"

// Book is a bookstore catalog entry.
type Book struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	CoverURL    string          `json:"coverUrl"`
	Price       decimal.Decimal `json:"price"`
	Published   bool            `json:"published"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateParams describes a new catalog entry.
type CreateParams struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Author      string          `json:"author" validate:"required,max=120"`
	Description string          `json:"description" validate:"max=5000"`
	CoverURL    string          `json:"coverUrl" validate:"omitempty,url"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateParams carries partial edits to a catalog entry.
type UpdateParams struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,max=200"`
	Author      *string          `json:"author,omitempty" validate:"omitempty,max=120"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	CoverURL    *string          `json:"coverUrl,omitempty" validate:"omitempty,url"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Published   *bool            `json:"published,omitempty"`
}

// Service defines bookstore catalog management.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Book], error)
	Get(ctx context.Context, id string) (*Book, error)
	Create(ctx context.Context, params CreateParams) (*Book, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Book, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api *apiclient.Client
}

// NewService wires the books dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Book], error) {
	return rest.List[Book](ctx, s.api, basePath, params)
}

func (s *service) Get(ctx context.Context, id string) (*Book, error) {
	return rest.Get[Book](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Book, error) {
	return rest.Create[Book](ctx, s.api, basePath, params)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*Book, error) {
	return rest.Update[Book](ctx, s.api, rest.ResourcePath(basePath, id), params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(basePath, id))
}
