package events

import (
	"context"
	"time"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/events"

// Event is a calendar entry for services, meetings, and outreach.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Capacity    int       `json:"capacity"`
	RSVPCount   int       `json:"rsvpCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Page is the event listing shape. The backend keys the collection as
// "events" rather than "data", and the client deliberately passes that
// through untouched, so the decode happens here.
type Page struct {
	Events []Event         `json:"events"`
	Meta   pagination.Meta `json:"pagination"`
}

type CreateParams struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	Location    string    `json:"location" validate:"max=200"`
	StartsAt    time.Time `json:"startsAt" validate:"required"`
	EndsAt      time.Time `json:"endsAt" validate:"required"`
	Capacity    int       `json:"capacity" validate:"min=0"`
}

type UpdateParams struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	Capacity    *int       `json:"capacity,omitempty" validate:"omitempty,min=0"`
}

// Service defines event calendar management.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*Page, error)
	Get(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, params CreateParams) (*Event, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Event, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api *apiclient.Client
}

// NewService wires the events dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*Page, error) {
	payload, err := s.api.Get(ctx, basePath, &apiclient.RequestOptions{Query: params.Query()})
	if err != nil {
		return nil, err
	}
	page, err := apiclient.Decode[Page](payload)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *service) Get(ctx context.Context, id string) (*Event, error) {
	return rest.Get[Event](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Event, error) {
	return rest.Create[Event](ctx, s.api, basePath, params)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*Event, error) {
	return rest.Update[Event](ctx, s.api, rest.ResourcePath(basePath, id), params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(basePath, id))
}
