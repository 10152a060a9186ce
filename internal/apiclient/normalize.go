package apiclient

import (
	"strings"

	"github.com/gracewaylabs/graceway-admin/pkg/enums"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/metrics"
)

// listAlias names the output keys a paginated list is emitted under. The
// generic shape is data/meta; a few endpoint families use their own names.
type listAlias struct {
	items string
	meta  string
}

var genericAlias = listAlias{items: "data", meta: "meta"}

// Normalizer converts the backend's response envelopes into the shapes the
// feature services consume. The backend wraps everything as
// {success, data, message?, meta?}, but endpoint families disagree on how
// pagination is nested and named, so the unwrapped payload is matched
// against the known variants in a fixed order.
//
// A route registry declares the aliased output keys per endpoint family;
// heuristic shape matching covers everything the registry does not name. In
// permissive mode an unmatched shape passes through unchanged; strict mode
// turns a payload that still looks paginated into an UNRECOGNIZED_SHAPE
// error so contract drift fails loudly instead of silently.
type Normalizer struct {
	routes  map[string]listAlias
	strict  bool
	metrics *metrics.ClientMetrics
}

// NormalizerOption configures optional normalizer behavior.
type NormalizerOption func(*Normalizer)

// WithStrictShapes makes unmatched paginated shapes an error instead of a
// silent passthrough.
func WithStrictShapes() NormalizerOption {
	return func(n *Normalizer) {
		n.strict = true
	}
}

// WithRouteAlias registers aliased list keys for URLs containing fragment.
func WithRouteAlias(fragment, itemsKey, metaKey string) NormalizerOption {
	return func(n *Normalizer) {
		n.routes[fragment] = listAlias{items: itemsKey, meta: metaKey}
	}
}

// WithShapeMetrics records passthrough occurrences on the given metrics.
func WithShapeMetrics(m *metrics.ClientMetrics) NormalizerOption {
	return func(n *Normalizer) {
		n.metrics = m
	}
}

// NewNormalizer builds a normalizer preloaded with the game-content aliases
// the dashboard depends on.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		routes: map[string]listAlias{
			"verse-scrambles":   {items: "verses", meta: "pagination"},
			"character-guesses": {items: "characters", meta: "pagination"},
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Normalize reshapes a decoded response body for the given request URL.
// Bodies that do not carry the success/data envelope are returned unchanged,
// which also makes normalization idempotent: every emitted shape lacks the
// envelope marker.
func (n *Normalizer) Normalize(rawURL string, body any) (any, error) {
	payload, ok := body.(map[string]any)
	if !ok {
		return body, nil
	}
	if _, hasSuccess := payload["success"]; !hasSuccess {
		return payload, nil
	}
	data, hasData := payload["data"]
	if !hasData {
		return payload, nil
	}

	// Plain array with a sibling meta: paginated list.
	if items, ok := data.([]any); ok {
		if meta, ok := payload["meta"].(map[string]any); ok {
			alias := n.aliasFor(rawURL)
			return map[string]any{alias.items: items, alias.meta: meta}, nil
		}
		if n.strict {
			return nil, pkgerrors.New(pkgerrors.CodeShape, "array payload without pagination meta")
		}
		n.countPassthrough(rawURL)
		return data, nil
	}

	inner, ok := data.(map[string]any)
	if !ok {
		// Scalar payloads pass through.
		return data, nil
	}

	// Double-wrapped list: {data:{data:[...], meta:{...}}}.
	if items, ok := inner["data"].([]any); ok {
		if meta, ok := inner["meta"].(map[string]any); ok {
			alias, aliased := n.routeAlias(rawURL)
			if aliased {
				return map[string]any{alias.items: items, alias.meta: meta}, nil
			}
			return inner, nil
		}
	}

	// Sermon lists nest under their own field names.
	if items, ok := inner["sermons"].([]any); ok {
		if meta, ok := inner["pagination"].(map[string]any); ok {
			return map[string]any{"data": items, "meta": meta}, nil
		}
	}

	// Prayer requests additionally need per-record field and status mapping.
	if items, ok := inner["prayerRequests"].([]any); ok {
		if meta, ok := inner["pagination"].(map[string]any); ok {
			return map[string]any{"data": mapPrayerRecords(items), "meta": meta}, nil
		}
	}

	if looksPaginated(inner) {
		if n.strict {
			return nil, pkgerrors.New(pkgerrors.CodeShape, "paginated payload matched no known envelope variant")
		}
		n.countPassthrough(rawURL)
	}

	// Single resource or already-correct shape.
	return inner, nil
}

// mapPrayerRecords translates backend prayer-request records into the
// dashboard's field names. The status translation must stay exact: the
// update path re-maps the display status onto the backend enum.
func mapPrayerRecords(items []any) []any {
	mapped := make([]any, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			mapped = append(mapped, item)
			continue
		}
		out := make(map[string]any, len(record)+2)
		for key, value := range record {
			out[key] = value
		}
		if status, ok := record["status"].(string); ok {
			out["status"] = string(enums.PrayerStatus(status).Display())
		}
		if description, ok := record["description"]; ok {
			out["content"] = description
		}
		if _, ok := record["prayerCount"]; !ok {
			out["prayerCount"] = 0
		}
		mapped = append(mapped, out)
	}
	return mapped
}

func (n *Normalizer) aliasFor(rawURL string) listAlias {
	if alias, ok := n.routeAlias(rawURL); ok {
		return alias
	}
	return genericAlias
}

func (n *Normalizer) routeAlias(rawURL string) (listAlias, bool) {
	for fragment, alias := range n.routes {
		if strings.Contains(rawURL, fragment) {
			return alias, true
		}
	}
	return listAlias{}, false
}

func (n *Normalizer) countPassthrough(rawURL string) {
	if n.metrics != nil {
		n.metrics.IncShapePassthrough(endpointLabel(rawURL))
	}
}

// looksPaginated flags payloads that carry a pagination block alongside an
// item key the decision table does not recognize.
func looksPaginated(payload map[string]any) bool {
	if _, ok := payload["pagination"].(map[string]any); !ok {
		return false
	}
	for key, value := range payload {
		if key == "pagination" {
			continue
		}
		if _, ok := value.([]any); ok {
			return true
		}
	}
	return false
}

func endpointLabel(rawURL string) string {
	trimmed := rawURL
	if idx := strings.Index(trimmed, "?"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	parts := strings.Split(strings.Trim(trimmed, "/"), "/")
	if len(parts) == 0 {
		return "unknown"
	}
	return parts[len(parts)-1]
}
