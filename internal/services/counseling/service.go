package counseling

import (
	"context"
	"time"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/counseling-requests"

// Request is a confidential counseling appointment request.
type Request struct {
	ID          string    `json:"id"`
	MemberName  string    `json:"memberName"`
	Contact     string    `json:"contact"`
	Topic       string    `json:"topic"`
	Notes       string    `json:"notes"`
	Scheduled   bool      `json:"scheduled"`
	ScheduledAt *string   `json:"scheduledAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateParams covers phone and walk-in intake done by staff.
type CreateParams struct {
	MemberName string `json:"memberName" validate:"required,max=120"`
	Contact    string `json:"contact" validate:"required,max=200"`
	Topic      string `json:"topic" validate:"required,max=200"`
	Notes      string `json:"notes" validate:"max=5000"`
}

type UpdateParams struct {
	Contact *string `json:"contact,omitempty" validate:"omitempty,max=200"`
	Topic   *string `json:"topic,omitempty" validate:"omitempty,max=200"`
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

type ScheduleParams struct {
	ScheduledAt string `json:"scheduledAt" validate:"required"`
	Counselor   string `json:"counselor" validate:"required,max=120"`
}

// Service defines counseling request handling.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Request], error)
	Get(ctx context.Context, id string) (*Request, error)
	Create(ctx context.Context, params CreateParams) (*Request, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Request, error)
	Schedule(ctx context.Context, id string, params ScheduleParams) (*Request, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api *apiclient.Client
}

// NewService wires the counseling dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Request], error) {
	return rest.List[Request](ctx, s.api, basePath, params)
}

func (s *service) Get(ctx context.Context, id string) (*Request, error) {
	return rest.Get[Request](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Request, error) {
	return rest.Create[Request](ctx, s.api, basePath, params)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*Request, error) {
	return rest.Update[Request](ctx, s.api, rest.ResourcePath(basePath, id), params)
}

func (s *service) Schedule(ctx context.Context, id string, params ScheduleParams) (*Request, error) {
	if err := apiclient.ValidateParams(params); err != nil {
		return nil, err
	}
	return rest.Action[Request](ctx, s.api, rest.ResourcePath(basePath, id)+"/schedule", params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(basePath, id))
}
