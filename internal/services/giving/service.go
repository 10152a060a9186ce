package giving

import (
	"context"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/giving"

// Gift is a single tithe or offering record.
type Gift struct {
	ID         string          `json:"id"`
	MemberName string          `json:"memberName"`
	Fund       string          `json:"fund"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Recurring  bool            `json:"recurring"`
	GivenAt    time.Time       `json:"givenAt"`
}

// Summary aggregates giving over a reporting window.
type Summary struct {
	Total      decimal.Decimal            `json:"total"`
	Currency   string                     `json:"currency"`
	GiftCount  int                        `json:"giftCount"`
	FundTotals map[string]decimal.Decimal `json:"fundTotals"`
}

// Service defines giving records and reporting.
type Service interface {
	List(ctx context.Context, params pagination.Params, fund string) (*apiclient.List[Gift], error)
	Get(ctx context.Context, id string) (*Gift, error)
	Summary(ctx context.Context, from, to string) (*Summary, error)
}

type service struct {
	api *apiclient.Client
}

// NewService wires the giving dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params, fund string) (*apiclient.List[Gift], error) {
	extra := url.Values{}
	if fund != "" {
		extra.Set("fund", fund)
	}
	return rest.ListQuery[Gift](ctx, s.api, basePath, params, extra)
}

func (s *service) Get(ctx context.Context, id string) (*Gift, error) {
	return rest.Get[Gift](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Summary(ctx context.Context, from, to string) (*Summary, error) {
	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}
	payload, err := s.api.Get(ctx, basePath+"/summary", &apiclient.RequestOptions{Query: query})
	if err != nil {
		return nil, err
	}
	summary, err := apiclient.Decode[Summary](payload)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
