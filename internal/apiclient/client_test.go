package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gracewaylabs/graceway-admin/pkg/config"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
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

func emptyResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("")),
		Header:     http.Header{},
	}
}

type recordingSink struct {
	mu      sync.Mutex
	token   string
	cleared int
}

func (r *recordingSink) SetAccessToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
}

func (r *recordingSink) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = ""
	r.cleared++
}

func newTestClient(t *testing.T, rt roundTripFunc, storage TokenStorage, sink CookieSink) *Client {
	t.Helper()
	tokens := NewTokenManager(context.Background(), storage, sink, nil)
	client, err := NewClient(
		config.APIConfig{BaseURL: "http://api.test/api"},
		tokens,
		WithHTTPClient(&http.Client{Transport: rt}),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func seededStorage(t *testing.T, access, refresh string) *MemoryStorage {
	t.Helper()
	storage := NewMemoryStorage()
	ctx := context.Background()
	if err := storage.Set(ctx, StorageKeyAccessToken, access); err != nil {
		t.Fatalf("seed access token: %v", err)
	}
	if err := storage.Set(ctx, StorageKeyRefreshToken, refresh); err != nil {
		t.Fatalf("seed refresh token: %v", err)
	}
	return storage
}

func TestDoSetsDefaultHeaders(t *testing.T) {
	var captured http.Header
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = req.Header.Clone()
		return jsonResponse(http.StatusOK, `{"success":true,"data":{"ok":true}}`), nil
	})

	client := newTestClient(t, rt, seededStorage(t, "acc-1", "ref-1"), nil)
	if _, err := client.Get(context.Background(), "/books", nil); err != nil {
		t.Fatalf("get: %v", err)
	}

	if captured.Get("Content-Type") != "application/json" {
		t.Fatalf("content type header missing: %v", captured)
	}
	if captured.Get("X-Requested-With") != "XMLHttpRequest" {
		t.Fatalf("requested-with header missing: %v", captured)
	}
	if captured.Get("Authorization") != "Bearer acc-1" {
		t.Fatalf("authorization header = %q", captured.Get("Authorization"))
	}
	if captured.Get("X-Request-Id") == "" {
		t.Fatal("request id header missing")
	}
}

func TestDoCallerHeadersWin(t *testing.T) {
	var captured http.Header
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = req.Header.Clone()
		return jsonResponse(http.StatusOK, `{"success":true,"data":{}}`), nil
	})

	client := newTestClient(t, rt, nil, nil)
	opts := &RequestOptions{Headers: http.Header{"Content-Type": []string{"application/vnd.api+json"}}}
	if _, err := client.Get(context.Background(), "/books", opts); err != nil {
		t.Fatalf("get: %v", err)
	}
	if captured.Get("Content-Type") != "application/vnd.api+json" {
		t.Fatalf("caller header lost: %q", captured.Get("Content-Type"))
	}
}

func TestDoAbsoluteURLPassthrough(t *testing.T) {
	var capturedURL string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		return jsonResponse(http.StatusOK, `{"success":true,"data":{}}`), nil
	})

	client := newTestClient(t, rt, nil, nil)
	if _, err := client.Get(context.Background(), "https://elsewhere.test/ping", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if capturedURL != "https://elsewhere.test/ping" {
		t.Fatalf("absolute URL rewritten: %q", capturedURL)
	}
}

func TestDoRelativePathPrefixed(t *testing.T) {
	var capturedURL string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		return jsonResponse(http.StatusOK, `{"success":true,"data":{}}`), nil
	})

	client := newTestClient(t, rt, nil, nil)
	if _, err := client.Get(context.Background(), "/sermons", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if capturedURL != "http://api.test/api/sermons" {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
}

func TestDoSingleRetryInvariant(t *testing.T) {
	var requestCount, refreshCount int32
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/auth/refresh") {
			atomic.AddInt32(&refreshCount, 1)
			return jsonResponse(http.StatusOK, `{"data":{"accessToken":"acc-2","refreshToken":"ref-2"}}`), nil
		}
		atomic.AddInt32(&requestCount, 1)
		// The transport always answers 401; the client must stop after one
		// refresh and one retried request.
		return jsonResponse(http.StatusUnauthorized, `{"message":"expired"}`), nil
	})

	client := newTestClient(t, rt, seededStorage(t, "acc-1", "ref-1"), nil)
	_, err := client.Get(context.Background(), "/books", nil)
	if err == nil {
		t.Fatal("expected error from persistent 401")
	}
	if got := atomic.LoadInt32(&requestCount); got != 2 {
		t.Fatalf("request count = %d, want 2 (original + one retry)", got)
	}
	if got := atomic.LoadInt32(&refreshCount); got != 1 {
		t.Fatalf("refresh count = %d, want exactly 1", got)
	}
	// The second 401 surfaces as a normal application error, not a loop.
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestDoRetriesWithRefreshedToken(t *testing.T) {
	var authHeaders []string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/auth/refresh") {
			if req.Header.Get("Authorization") != "" {
				t.Error("refresh request must be unauthenticated")
			}
			body, _ := io.ReadAll(req.Body)
			var payload map[string]string
			if err := json.Unmarshal(body, &payload); err != nil || payload["refreshToken"] != "ref-1" {
				t.Errorf("unexpected refresh payload %s", body)
			}
			return jsonResponse(http.StatusOK, `{"data":{"accessToken":"acc-2","refreshToken":"ref-2"}}`), nil
		}
		authHeaders = append(authHeaders, req.Header.Get("Authorization"))
		if len(authHeaders) == 1 {
			return jsonResponse(http.StatusUnauthorized, `{"message":"expired"}`), nil
		}
		return jsonResponse(http.StatusOK, `{"success":true,"data":{"id":"1"}}`), nil
	})

	storage := seededStorage(t, "acc-1", "ref-1")
	client := newTestClient(t, rt, storage, nil)
	payload, err := client.Get(context.Background(), "/books/1", nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if result := payload.(map[string]any); result["id"] != "1" {
		t.Fatalf("unexpected payload %#v", payload)
	}
	if len(authHeaders) != 2 || authHeaders[0] != "Bearer acc-1" || authHeaders[1] != "Bearer acc-2" {
		t.Fatalf("unexpected auth header sequence %v", authHeaders)
	}

	// The refreshed pair is persisted.
	access, _ := storage.Get(context.Background(), StorageKeyAccessToken)
	refresh, _ := storage.Get(context.Background(), StorageKeyRefreshToken)
	if access != "acc-2" || refresh != "ref-2" {
		t.Fatalf("refreshed pair not persisted: %q %q", access, refresh)
	}
}

func TestDoRefreshFailureClearsState(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/auth/refresh") {
			return jsonResponse(http.StatusUnauthorized, `{"message":"refresh token revoked"}`), nil
		}
		return jsonResponse(http.StatusUnauthorized, `{"message":"expired"}`), nil
	})

	storage := seededStorage(t, "acc-1", "ref-1")
	sink := &recordingSink{}
	hookCalled := false

	tokens := NewTokenManager(context.Background(), storage, sink, nil)
	client, err := NewClient(
		config.APIConfig{BaseURL: "http://api.test/api"},
		tokens,
		WithHTTPClient(&http.Client{Transport: roundTripFunc(rt)}),
		WithAuthExpiredHook(func() { hookCalled = true }),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Get(context.Background(), "/books", nil)
	if !pkgerrors.IsCode(err, pkgerrors.CodeAuthExpired) {
		t.Fatalf("expected auth-expired error, got %v", err)
	}
	if !hookCalled {
		t.Fatal("auth-expired hook not invoked")
	}

	ctx := context.Background()
	if access, _ := storage.Get(ctx, StorageKeyAccessToken); access != "" {
		t.Fatalf("access token survived refresh failure: %q", access)
	}
	if refresh, _ := storage.Get(ctx, StorageKeyRefreshToken); refresh != "" {
		t.Fatalf("refresh token survived refresh failure: %q", refresh)
	}
	if tokens.AccessToken() != "" || tokens.RefreshToken() != "" {
		t.Fatal("in-memory pair survived refresh failure")
	}
	if sink.token != "" || sink.cleared == 0 {
		t.Fatalf("cookie not expired: %+v", sink)
	}
}

func TestDoNoRefreshWithoutRefreshToken(t *testing.T) {
	var refreshHit bool
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/auth/refresh") {
			refreshHit = true
		}
		return jsonResponse(http.StatusUnauthorized, `{"message":"nope"}`), nil
	})

	client := newTestClient(t, rt, nil, nil)
	_, err := client.Get(context.Background(), "/books", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if refreshHit {
		t.Fatal("refresh attempted without a refresh token")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestErrorMessageExtractionPrecedence(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"top-level message", `{"message":"A"}`, "A"},
		{"nested data message", `{"data":{"message":"B"}}`, "B"},
		{"error field", `{"error":"C"}`, "C"},
		{"empty body falls back to status text", ``, "Bad Request"},
		{"non-json body falls back to status text", `<html>oops</html>`, "Bad Request"},
		{"message outranks error", `{"message":"A","error":"C"}`, "A"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadRequest, tc.body), nil
			})
			client := newTestClient(t, rt, nil, nil)
			_, err := client.Get(context.Background(), "/books", nil)
			if err == nil {
				t.Fatal("expected error")
			}
			typed := pkgerrors.As(err)
			if typed == nil || typed.Message() != tc.want {
				t.Fatalf("message = %v, want %q", err, tc.want)
			}
		})
	}
}

func TestDoEmptySuccessBody(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return emptyResponse(http.StatusNoContent), nil
	})

	client := newTestClient(t, rt, nil, nil)
	payload, err := client.Delete(context.Background(), "/books/1", nil)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	result, ok := payload.(map[string]any)
	if !ok || len(result) != 0 {
		t.Fatalf("expected empty object, got %#v", payload)
	}
}

func TestConcurrentRefreshShared(t *testing.T) {
	var refreshCount int32
	release := make(chan struct{})
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/auth/refresh") {
			atomic.AddInt32(&refreshCount, 1)
			<-release
			return jsonResponse(http.StatusOK, `{"data":{"accessToken":"acc-2","refreshToken":"ref-2"}}`), nil
		}
		return jsonResponse(http.StatusOK, `{"success":true,"data":{}}`), nil
	})

	client := newTestClient(t, rt, seededStorage(t, "acc-1", "ref-1"), nil)

	const callers = 5
	var wg sync.WaitGroup
	tokens := make([]string, callers)
	oks := make([]bool, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], oks[i] = client.refreshAccessToken(context.Background())
		}(i)
	}

	// Let every caller reach the in-flight refresh before it completes.
	for atomic.LoadInt32(&refreshCount) == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		if !oks[i] || tokens[i] != "acc-2" {
			t.Fatalf("caller %d got (%q, %v)", i, tokens[i], oks[i])
		}
	}
	if got := atomic.LoadInt32(&refreshCount); got != 1 {
		t.Fatalf("refresh count = %d, want a single shared refresh", got)
	}
}

func TestUploadAttachesBearerAndMultipart(t *testing.T) {
	var captured *http.Request
	var capturedBody []byte
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		capturedBody, _ = io.ReadAll(req.Body)
		return jsonResponse(http.StatusOK, `{"success":true,"data":{"id":"m1"}}`), nil
	})

	client := newTestClient(t, rt, seededStorage(t, "acc-1", "ref-1"), nil)
	payload, err := client.Upload(context.Background(), "/media", "file", "sermon.mp3", strings.NewReader("audio-bytes"), map[string]string{"kind": "audio"})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if result := payload.(map[string]any); result["id"] != "m1" {
		t.Fatalf("unexpected payload %#v", payload)
	}
	if !strings.HasPrefix(captured.Header.Get("Content-Type"), "multipart/form-data") {
		t.Fatalf("unexpected content type %q", captured.Header.Get("Content-Type"))
	}
	if captured.Header.Get("Authorization") != "Bearer acc-1" {
		t.Fatalf("bearer header missing: %q", captured.Header.Get("Authorization"))
	}
	body := string(capturedBody)
	if !strings.Contains(body, "audio-bytes") || !strings.Contains(body, `filename="sermon.mp3"`) {
		t.Fatalf("multipart body missing content: %s", body)
	}
	if !strings.Contains(body, `name="kind"`) {
		t.Fatalf("extra field missing: %s", body)
	}
}
