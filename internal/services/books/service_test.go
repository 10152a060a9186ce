package books

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/pkg/config"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
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

func TestListSendsPaginationQuery(t *testing.T) {
	var query string
	svc := newService(t, func(req *http.Request) (*http.Response, error) {
		query = req.URL.RawQuery
		return jsonResponse(http.StatusOK, `{
			"success": true,
			"data": {
				"data": [{"id": "bk-1", "title": "Commentary", "price": "24.00"}],
				"meta": {"total": 1, "page": 2, "limit": 5, "totalPages": 1}
			}
		}`), nil
	})

	page, err := svc.List(context.Background(), pagination.Params{Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(query, "page=2") || !strings.Contains(query, "limit=5") {
		t.Fatalf("query = %q", query)
	}
	if len(page.Data) != 1 || !page.Data[0].Price.Equal(decimal.RequireFromString("24.00")) {
		t.Fatalf("page = %+v", page)
	}
}

func TestCreateValidatesBeforeSending(t *testing.T) {
	svc := newService(t, func(req *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	})

	_, err := svc.Create(context.Background(), CreateParams{Author: "A. Writer"})
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("err = %v", err)
	}
}

func TestUpdateSendsOnlyChangedFields(t *testing.T) {
	var body map[string]any
	svc := newService(t, func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPut || req.URL.Path != "/api/books/bk-1" {
			t.Fatalf("request = %s %s", req.Method, req.URL.Path)
		}
		raw, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(raw, &body)
		return jsonResponse(http.StatusOK, `{
			"success": true,
			"data": {"id": "bk-1", "title": "Commentary", "published": true}
		}`), nil
	})

	published := true
	book, err := svc.Update(context.Background(), "bk-1", UpdateParams{Published: &published})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("body = %+v", body)
	}
	if _, ok := body["published"]; !ok {
		t.Fatalf("body = %+v", body)
	}
	if !book.Published {
		t.Fatalf("book = %+v", book)
	}
}

func TestDeleteEscapesID(t *testing.T) {
	var path string
	svc := newService(t, func(req *http.Request) (*http.Response, error) {
		path = req.URL.EscapedPath()
		return jsonResponse(http.StatusOK, `{"success":true,"data":{}}`), nil
	})

	if err := svc.Delete(context.Background(), "bk/odd id"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if path != "/api/books/bk%2Fodd%20id" {
		t.Fatalf("path = %q", path)
	}
}
