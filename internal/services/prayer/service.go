// Package prayer manages prayer requests. Listing goes through the
// client's envelope normalization, so records arrive with dashboard
// status names and a content field; status writes translate back to the
// backend's own enum before the call goes out.
package prayer

import (
	"context"
	"time"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	"github.com/gracewaylabs/graceway-admin/pkg/enums"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/prayer-requests"

// Request is a prayer request as the dashboard sees it, post
// normalization.
type Request struct {
	ID          string                    `json:"id"`
	Content     string                    `json:"content"`
	Description string                    `json:"description"`
	AuthorName  string                    `json:"authorName"`
	Anonymous   bool                      `json:"anonymous"`
	Status      enums.PrayerDisplayStatus `json:"status"`
	PrayerCount int                       `json:"prayerCount"`
	CreatedAt   time.Time                 `json:"createdAt"`
}

// Service defines prayer request moderation.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Request], error)
	Get(ctx context.Context, id string) (*Request, error)
	UpdateStatus(ctx context.Context, id string, status enums.PrayerDisplayStatus) (*Request, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api *apiclient.Client
}

// NewService wires the prayer dependencies.
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

func (s *service) UpdateStatus(ctx context.Context, id string, status enums.PrayerDisplayStatus) (*Request, error) {
	backend, err := status.Backend()
	if err != nil {
		return nil, err
	}
	payload, err := s.api.Patch(ctx, rest.ResourcePath(basePath, id)+"/status", map[string]string{
		"status": string(backend),
	}, nil)
	if err != nil {
		return nil, err
	}
	record, err := apiclient.Decode[Request](payload)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(basePath, id))
}
