package apiclient

import (
	"encoding/json"
	"reflect"
	"testing"

	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
)

func decodeJSON(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return payload
}

func TestNormalizeShapeTable(t *testing.T) {
	cases := []struct {
		name string
		url  string
		body string
		want string
	}{
		{
			name: "array with meta at aliased verse route",
			url:  "http://api.test/games/verse-scrambles?page=1",
			body: `{"success":true,"data":[{"id":"v1"}],"meta":{"total":5}}`,
			want: `{"verses":[{"id":"v1"}],"pagination":{"total":5}}`,
		},
		{
			name: "array with meta at aliased character route",
			url:  "http://api.test/games/character-guesses",
			body: `{"success":true,"data":[{"id":"c1"}],"meta":{"total":3}}`,
			want: `{"characters":[{"id":"c1"}],"pagination":{"total":3}}`,
		},
		{
			name: "array with meta at generic route",
			url:  "http://api.test/books",
			body: `{"success":true,"data":[{"id":"b1"}],"meta":{"total":1}}`,
			want: `{"data":[{"id":"b1"}],"meta":{"total":1}}`,
		},
		{
			name: "double wrapped list at aliased route",
			url:  "http://api.test/games/verse-scrambles",
			body: `{"success":true,"data":{"data":[{"id":"v2"}],"meta":{"total":2}}}`,
			want: `{"verses":[{"id":"v2"}],"pagination":{"total":2}}`,
		},
		{
			name: "double wrapped list at generic route passes inner through",
			url:  "http://api.test/devotionals",
			body: `{"success":true,"data":{"data":[{"id":"d1"}],"meta":{"total":9}}}`,
			want: `{"data":[{"id":"d1"}],"meta":{"total":9}}`,
		},
		{
			name: "sermon pagination aliases",
			url:  "http://api.test/sermons",
			body: `{"success":true,"data":{"sermons":[{"id":"s1"}],"pagination":{"total":2}}}`,
			want: `{"data":[{"id":"s1"}],"meta":{"total":2}}`,
		},
		{
			name: "single resource unwraps untouched",
			url:  "http://api.test/books/1",
			body: `{"success":true,"data":{"id":"1","title":"t"}}`,
			want: `{"id":"1","title":"t"}`,
		},
	}

	norm := NewNormalizer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := norm.Normalize(tc.url, decodeJSON(t, tc.body))
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			want := decodeJSON(t, tc.want)
			if !reflect.DeepEqual(got, any(want)) {
				t.Fatalf("unexpected shape\n got: %#v\nwant: %#v", got, want)
			}
		})
	}
}

func TestNormalizePrayerRequests(t *testing.T) {
	body := decodeJSON(t, `{
		"success": true,
		"data": {
			"prayerRequests": [
				{"id":"p1","status":"SUBMITTED","description":"x"},
				{"id":"p2","status":"PRAYING","description":"y","prayerCount":4},
				{"id":"p3","status":"ANSWERED","description":"z"},
				{"id":"p4","status":"ARCHIVED","description":"w"}
			],
			"pagination": {"total":4}
		}
	}`)

	norm := NewNormalizer()
	got, err := norm.Normalize("http://api.test/prayer-requests", body)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	result, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("unexpected result type %T", got)
	}
	records, ok := result["data"].([]any)
	if !ok || len(records) != 4 {
		t.Fatalf("unexpected records %#v", result["data"])
	}

	wantStatuses := []string{"PENDING", "IN_PROGRESS", "ANSWERED", "CLOSED"}
	wantContents := []string{"x", "y", "z", "w"}
	for i, raw := range records {
		record := raw.(map[string]any)
		if record["status"] != wantStatuses[i] {
			t.Fatalf("record %d status = %v, want %s", i, record["status"], wantStatuses[i])
		}
		if record["content"] != wantContents[i] {
			t.Fatalf("record %d content = %v, want %s", i, record["content"], wantContents[i])
		}
		if record["description"] != wantContents[i] {
			t.Fatalf("record %d lost description: %#v", i, record)
		}
	}
	if records[0].(map[string]any)["prayerCount"] != 0 {
		t.Fatalf("missing prayerCount default: %#v", records[0])
	}
	if count := records[1].(map[string]any)["prayerCount"]; count != float64(4) {
		t.Fatalf("existing prayerCount overwritten: %v", count)
	}
	if meta := result["meta"].(map[string]any); meta["total"] != float64(4) {
		t.Fatalf("unexpected meta %#v", meta)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	norm := NewNormalizer()

	plain := decodeJSON(t, `{"id":"1","title":"t"}`)
	got, err := norm.Normalize("http://api.test/books/1", plain)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !reflect.DeepEqual(got, any(plain)) {
		t.Fatalf("already-normalized object changed: %#v", got)
	}

	// A normalized list lacks the envelope marker, so re-running the
	// normalizer on its own output is a no-op.
	enveloped := decodeJSON(t, `{"success":true,"data":[{"id":"b1"}],"meta":{"total":1}}`)
	first, err := norm.Normalize("http://api.test/books", enveloped)
	if err != nil {
		t.Fatalf("first normalize: %v", err)
	}
	second, err := norm.Normalize("http://api.test/books", first)
	if err != nil {
		t.Fatalf("second normalize: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization not idempotent\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

func TestNormalizeStrictMode(t *testing.T) {
	norm := NewNormalizer(WithStrictShapes())
	body := decodeJSON(t, `{"success":true,"data":{"widgets":[{"id":"w1"}],"pagination":{"total":1}}}`)

	_, err := norm.Normalize("http://api.test/widgets", body)
	if err == nil {
		t.Fatal("expected unrecognized-shape error")
	}
	if !pkgerrors.IsCode(err, pkgerrors.CodeShape) {
		t.Fatalf("unexpected error %v", err)
	}

	// The same payload passes through in permissive mode.
	permissive := NewNormalizer()
	got, err := permissive.Normalize("http://api.test/widgets", body)
	if err != nil {
		t.Fatalf("permissive normalize: %v", err)
	}
	if _, ok := got.(map[string]any)["widgets"]; !ok {
		t.Fatalf("permissive mode reshaped unknown payload: %#v", got)
	}
}

func TestNormalizeCustomRouteAlias(t *testing.T) {
	norm := NewNormalizer(WithRouteAlias("memory-cards", "cards", "pagination"))
	body := decodeJSON(t, `{"success":true,"data":[{"id":"m1"}],"meta":{"total":1}}`)

	got, err := norm.Normalize("http://api.test/games/memory-cards", body)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	result := got.(map[string]any)
	if _, ok := result["cards"]; !ok {
		t.Fatalf("registered alias ignored: %#v", result)
	}
}

func TestNormalizeNonObjectPayload(t *testing.T) {
	norm := NewNormalizer()
	got, err := norm.Normalize("http://api.test/stats", []any{"a", "b"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !reflect.DeepEqual(got, any([]any{"a", "b"})) {
		t.Fatalf("non-object payload changed: %#v", got)
	}
}
