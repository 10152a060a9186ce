package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	"github.com/gracewaylabs/graceway-admin/pkg/enums"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const basePath = "/orders"

// Item is a single line on an order.
type Item struct {
	BookID   string          `json:"bookId"`
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Order is a bookstore order.
type Order struct {
	ID            string            `json:"id"`
	MemberName    string            `json:"memberName"`
	Email         string            `json:"email"`
	Items         []Item            `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	Status        enums.OrderStatus `json:"status"`
	TrackingCode  string            `json:"trackingCode"`
	PaymentMethod string            `json:"paymentMethod"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// StatusParams carries an order status transition.
type StatusParams struct {
	Status       enums.OrderStatus `json:"status" validate:"required"`
	TrackingCode string            `json:"trackingCode,omitempty" validate:"max=120"`
}

// Service defines bookstore order fulfillment.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Order], error)
	Get(ctx context.Context, id string) (*Order, error)
	SetStatus(ctx context.Context, id string, params StatusParams) (*Order, error)
}

type service struct {
	api *apiclient.Client
}

// NewService wires the orders dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Order], error) {
	return rest.List[Order](ctx, s.api, basePath, params)
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	return rest.Get[Order](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) SetStatus(ctx context.Context, id string, params StatusParams) (*Order, error) {
	if !params.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status "+params.Status.String())
	}
	if err := apiclient.ValidateParams(params); err != nil {
		return nil, err
	}
	payload, err := s.api.Patch(ctx, rest.ResourcePath(basePath, id)+"/status", params, nil)
	if err != nil {
		return nil, err
	}
	order, err := apiclient.Decode[Order](payload)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
