package notifications

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/pkg/config"
	"github.com/gracewaylabs/graceway-admin/pkg/enums"
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

func TestQueueReportsState(t *testing.T) {
	svc := newService(t, func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodGet || req.URL.Path != "/api/notifications/queue" {
			t.Fatalf("request = %s %s", req.Method, req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{
			"success": true,
			"data": {"state": "RUNNING", "pending": 12, "sent": 340, "failed": 2}
		}`), nil
	})

	status, err := svc.Queue(context.Background())
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if status.State != enums.QueueStateRunning || status.Pending != 12 {
		t.Fatalf("status = %+v", status)
	}
}

func TestPauseAndResumeQueue(t *testing.T) {
	var paths []string
	svc := newService(t, func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPost {
			t.Fatalf("method = %s", req.Method)
		}
		paths = append(paths, req.URL.Path)
		state := "PAUSED"
		if strings.HasSuffix(req.URL.Path, "/resume") {
			state = "RUNNING"
		}
		return jsonResponse(http.StatusOK, `{"success":true,"data":{"state":"`+state+`","pending":0,"sent":0,"failed":0}}`), nil
	})

	paused, err := svc.PauseQueue(context.Background())
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if paused.State != enums.QueueStatePaused {
		t.Fatalf("state after pause = %s", paused.State)
	}

	resumed, err := svc.ResumeQueue(context.Background())
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.State != enums.QueueStateRunning {
		t.Fatalf("state after resume = %s", resumed.State)
	}

	want := []string{"/api/notifications/queue/pause", "/api/notifications/queue/resume"}
	for i, path := range want {
		if paths[i] != path {
			t.Fatalf("paths = %v", paths)
		}
	}
}

func TestCreateValidatesAudience(t *testing.T) {
	svc := newService(t, func(req *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	})

	_, err := svc.Create(context.Background(), CreateParams{
		Title:    "Midweek service",
		Body:     "Join us Wednesday at 7pm.",
		Audience: "everyone",
	})
	if err == nil {
		t.Fatal("expected validation error for audience")
	}
}
