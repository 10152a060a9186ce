// Package rest holds the shared call-and-decode helpers the feature
// services are built from. Every helper routes through the API client, so
// token handling, retry, and envelope normalization stay centralized.
package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

// List fetches a paginated collection normalized to the generic data/meta
// shape.
func List[T any](ctx context.Context, api *apiclient.Client, path string, params pagination.Params) (*apiclient.List[T], error) {
	payload, err := api.Get(ctx, path, &apiclient.RequestOptions{Query: params.Query()})
	if err != nil {
		return nil, err
	}
	result, err := apiclient.Decode[apiclient.List[T]](payload)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListQuery fetches a paginated collection with extra query parameters.
func ListQuery[T any](ctx context.Context, api *apiclient.Client, path string, params pagination.Params, extra url.Values) (*apiclient.List[T], error) {
	query := params.Query()
	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	payload, err := api.Get(ctx, path, &apiclient.RequestOptions{Query: query})
	if err != nil {
		return nil, err
	}
	result, err := apiclient.Decode[apiclient.List[T]](payload)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single resource.
func Get[T any](ctx context.Context, api *apiclient.Client, path string) (*T, error) {
	payload, err := api.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	result, err := apiclient.Decode[T](payload)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Create validates the params and posts them, decoding the created record.
func Create[T any](ctx context.Context, api *apiclient.Client, path string, params any) (*T, error) {
	if err := apiclient.ValidateParams(params); err != nil {
		return nil, err
	}
	payload, err := api.Post(ctx, path, params, nil)
	if err != nil {
		return nil, err
	}
	result, err := apiclient.Decode[T](payload)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Update validates the params and puts them, decoding the updated record.
func Update[T any](ctx context.Context, api *apiclient.Client, path string, params any) (*T, error) {
	if err := apiclient.ValidateParams(params); err != nil {
		return nil, err
	}
	payload, err := api.Put(ctx, path, params, nil)
	if err != nil {
		return nil, err
	}
	result, err := apiclient.Decode[T](payload)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a resource, discarding the response payload.
func Delete(ctx context.Context, api *apiclient.Client, path string) error {
	_, err := api.Delete(ctx, path, nil)
	return err
}

// Action posts a domain action (approve, publish, pause) and decodes the
// resulting record.
func Action[T any](ctx context.Context, api *apiclient.Client, path string, body any) (*T, error) {
	payload, err := api.Post(ctx, path, body, nil)
	if err != nil {
		return nil, err
	}
	result, err := apiclient.Decode[T](payload)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ResourcePath joins a collection base path with a record id.
func ResourcePath(base, id string) string {
	return fmt.Sprintf("%s/%s", base, url.PathEscape(id))
}
