// Package wisdom manages the two short-form content feeds, words of
// wisdom and words of knowledge. Both share one record shape and one
// operation set; only the collection path differs.
package wisdom

import (
	"context"
	"time"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

// Kind selects which feed a service instance manages.
type Kind string

const (
	KindWisdom    Kind = "words-of-wisdom"
	KindKnowledge Kind = "words-of-knowledge"
)

// Word is a short-form feed entry.
type Word struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Reference string    `json:"reference"`
	Author    string    `json:"author"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateParams struct {
	Text      string `json:"text" validate:"required,max=1000"`
	Reference string `json:"reference" validate:"max=120"`
	Author    string `json:"author" validate:"max=120"`
}

type UpdateParams struct {
	Text      *string `json:"text,omitempty" validate:"omitempty,max=1000"`
	Reference *string `json:"reference,omitempty" validate:"omitempty,max=120"`
	Author    *string `json:"author,omitempty" validate:"omitempty,max=120"`
	Published *bool   `json:"published,omitempty"`
}

// Service defines short-form feed management.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Word], error)
	Get(ctx context.Context, id string) (*Word, error)
	Create(ctx context.Context, params CreateParams) (*Word, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Word, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api  *apiclient.Client
	base string
}

// NewService wires a feed service for the given kind.
func NewService(api *apiclient.Client, kind Kind) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	if kind != KindWisdom && kind != KindKnowledge {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown feed kind "+string(kind))
	}
	return &service{api: api, base: "/" + string(kind)}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Word], error) {
	return rest.List[Word](ctx, s.api, s.base, params)
}

func (s *service) Get(ctx context.Context, id string) (*Word, error) {
	return rest.Get[Word](ctx, s.api, rest.ResourcePath(s.base, id))
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Word, error) {
	return rest.Create[Word](ctx, s.api, s.base, params)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*Word, error) {
	return rest.Update[Word](ctx, s.api, rest.ResourcePath(s.base, id), params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(s.base, id))
}
