package payments

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/payments"

// Payment is a processor-side charge record.
type Payment struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"orderId"`
	Provider   string          `json:"provider"`
	Reference  string          `json:"reference"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Status     string          `json:"status"`
	FailureMsg string          `json:"failureMessage"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// RefundParams describes a refund, full when Amount is nil.
type RefundParams struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Reason string           `json:"reason" validate:"required,max=500"`
}

// Service defines payment lookup and refunds.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Payment], error)
	Get(ctx context.Context, id string) (*Payment, error)
	Refund(ctx context.Context, id string, params RefundParams) (*Payment, error)
}

type service struct {
	api *apiclient.Client
}

// NewService wires the payments dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Payment], error) {
	return rest.List[Payment](ctx, s.api, basePath, params)
}

func (s *service) Get(ctx context.Context, id string) (*Payment, error) {
	return rest.Get[Payment](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Refund(ctx context.Context, id string, params RefundParams) (*Payment, error) {
	if err := apiclient.ValidateParams(params); err != nil {
		return nil, err
	}
	return rest.Action[Payment](ctx, s.api, rest.ResourcePath(basePath, id)+"/refund", params)
}
