package media

import (
	"context"
	"io"
	"time"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/media"

// Asset is an uploaded file record.
type Asset struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	URL         string    `json:"url"`
	Folder      string    `json:"folder"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Service defines media library management.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Asset], error)
	Upload(ctx context.Context, filename string, content io.Reader, folder string) (*Asset, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api *apiclient.Client
}

// NewService wires the media dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Asset], error) {
	return rest.List[Asset](ctx, s.api, basePath, params)
}

func (s *service) Upload(ctx context.Context, filename string, content io.Reader, folder string) (*Asset, error) {
	if filename == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "filename required")
	}
	var extra map[string]string
	if folder != "" {
		extra = map[string]string{"folder": folder}
	}
	payload, err := s.api.Upload(ctx, basePath+"/upload", "file", filename, content, extra)
	if err != nil {
		return nil, err
	}
	asset, err := apiclient.Decode[Asset](payload)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(basePath, id))
}
