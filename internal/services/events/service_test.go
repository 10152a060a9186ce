package events

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/pkg/config"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newService(t *testing.T, rt roundTripFunc) Service {
	t.Helper()
	tokens := apiclient.NewTokenManager(context.Background(), nil, nil, nil)
	tokens.SetTokens(context.Background(), "acc-1", "ref-1")
	client, err := apiclient.NewClient(
		config.APIConfig{BaseURL: "http://api.test/api"},
		tokens,
		apiclient.WithHTTPClient(&http.Client{Transport: rt}),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	svc, err := NewService(client)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

// The events listing keys its collection "events" instead of "data". The
// client leaves that shape alone, so the decode into Page happens here and
// must see the original keys.
func TestListDecodesEventsKeyedPage(t *testing.T) {
	svc := newService(t, func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/events" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{
			"success": true,
			"data": {
				"events": [
					{"id": "ev-1", "title": "Prayer night", "location": "Main hall", "capacity": 80, "rsvpCount": 31,
					 "startsAt": "2026-09-03T19:00:00Z", "endsAt": "2026-09-03T21:00:00Z", "createdAt": "2026-08-01T10:00:00Z"}
				],
				"pagination": {"total": 1, "page": 1, "limit": 20, "totalPages": 1}
			}
		}`), nil
	})

	page, err := svc.List(context.Background(), pagination.Params{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Events) != 1 {
		t.Fatalf("events = %+v", page.Events)
	}
	if page.Events[0].Title != "Prayer night" || page.Events[0].RSVPCount != 31 {
		t.Fatalf("event = %+v", page.Events[0])
	}
	if page.Meta.Total != 1 || page.Meta.TotalPages != 1 {
		t.Fatalf("meta = %+v", page.Meta)
	}
}

func TestCreateRequiresWindow(t *testing.T) {
	svc := newService(t, func(req *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	})

	_, err := svc.Create(context.Background(), CreateParams{Title: "Prayer night"})
	if err == nil {
		t.Fatal("expected validation error for missing times")
	}
}
