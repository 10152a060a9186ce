// Package groups manages small groups plus the moderation queues for
// member posts and abuse reports inside them.
package groups

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
	basePath    = "/groups"
	postsPath   = "/groups/posts"
	reportsPath = "/groups/reports"
)

// Group is a small group roster entry.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LeaderName  string    `json:"leaderName"`
	MemberCount int       `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Post is a member post awaiting moderation.
type Post struct {
	ID         string           `json:"id"`
	GroupID    string           `json:"groupId"`
	AuthorName string           `json:"authorName"`
	Body       string           `json:"body"`
	Status     enums.PostStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// Report is an abuse report filed against a post.
type Report struct {
	ID           string             `json:"id"`
	PostID       string             `json:"postId"`
	ReporterName string             `json:"reporterName"`
	Reason       string             `json:"reason"`
	Status       enums.ReportStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// Service defines group administration and moderation.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*apiclient.List[Group], error)
	Get(ctx context.Context, id string) (*Group, error)
	Delete(ctx context.Context, id string) error

	ListPosts(ctx context.Context, params pagination.Params) (*apiclient.List[Post], error)
	ApprovePost(ctx context.Context, id string) (*Post, error)
	RejectPost(ctx context.Context, id string, reason string) (*Post, error)

	ListReports(ctx context.Context, params pagination.Params) (*apiclient.List[Report], error)
	ResolveReport(ctx context.Context, id string) (*Report, error)
	DismissReport(ctx context.Context, id string) (*Report, error)
}

type service struct {
	api *apiclient.Client
}

// NewService wires the groups dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*apiclient.List[Group], error) {
	return rest.List[Group](ctx, s.api, basePath, params)
}

func (s *service) Get(ctx context.Context, id string) (*Group, error) {
	return rest.Get[Group](ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) Delete(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(basePath, id))
}

func (s *service) ListPosts(ctx context.Context, params pagination.Params) (*apiclient.List[Post], error) {
	return rest.List[Post](ctx, s.api, postsPath, params)
}

func (s *service) ApprovePost(ctx context.Context, id string) (*Post, error) {
	return rest.Action[Post](ctx, s.api, rest.ResourcePath(postsPath, id)+"/approve", nil)
}

func (s *service) RejectPost(ctx context.Context, id string, reason string) (*Post, error) {
	var body any
	if reason != "" {
		body = map[string]string{"reason": reason}
	}
	return rest.Action[Post](ctx, s.api, rest.ResourcePath(postsPath, id)+"/reject", body)
}

func (s *service) ListReports(ctx context.Context, params pagination.Params) (*apiclient.List[Report], error) {
	return rest.List[Report](ctx, s.api, reportsPath, params)
}

func (s *service) ResolveReport(ctx context.Context, id string) (*Report, error) {
	return rest.Action[Report](ctx, s.api, rest.ResourcePath(reportsPath, id)+"/resolve", nil)
}

func (s *service) DismissReport(ctx context.Context, id string) (*Report, error) {
	return rest.Action[Report](ctx, s.api, rest.ResourcePath(reportsPath, id)+"/dismiss", nil)
}
