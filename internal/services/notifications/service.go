// Package notifications manages push notification content and the
// delivery queue controls.
package notifications

import (
	"context"
	"time"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	"github.com/gracewaylabs/graceway-admin/pkg/enums"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const (
	basePath  = "/notifications"
	queuePath = "/notifications/queue"
)

// Notification is a push message, draft or sent.
type Notification struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Audience  string     `json:"audience"`
	SentAt    *time.Time `json:"sentAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

// QueueStatus reports the delivery queue state and backlog.
type QueueStatus struct {
	State   enums.QueueState `json:"state"`
	Pending int              `json:"pending"`
	Sent    int              `json:"sent"`
	Failed  int              `json:"failed"`
}

type CreateParams struct {
	Title    string `json:"title" validate:"required,max=120"`
	Body     string `json:"body" validate:"required,max=1000"`
	Audience string `json:"audience" validate:"required,oneof=all members leaders"`
}

// Service defines notification management and queue control.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Notification], error)
	Get(ctx context.Context, id string) (*Notification, error)
	Create(ctx context.Context, params CreateParams) (*Notification, error)
	Delete(ctx context.Context, id string) error

	Queue(ctx context.Context) (*QueueStatus, error)
	PauseQueue(ctx context.Context) (*QueueStatus, error)
	ResumeQueue(ctx context.Context) (*QueueStatus, error)
}

type service struct {
	api *apiclient.Client
}

// NewService wires the notifications dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Notification], error) {
	return rest.List[Notification](ctx, s.api, basePath, params)
}

func (s *service) Get(ctx context.Context, id string) (*Notification, error) {
	return rest.Get[Notification](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Notification, error) {
	return rest.Create[Notification](ctx, s.api, basePath, params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Queue(ctx context.Context) (*QueueStatus, error) {
	return rest.Get[QueueStatus](ctx, s.api, queuePath)
}

func (s *service) PauseQueue(ctx context.Context) (*QueueStatus, error) {
	return rest.Action[QueueStatus](ctx, s.api, queuePath+"/pause", nil)
}

func (s *service) ResumeQueue(ctx context.Context) (*QueueStatus, error) {
	return rest.Action[QueueStatus](ctx, s.api, queuePath+"/resume", nil)
}
