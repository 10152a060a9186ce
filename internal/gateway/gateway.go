// Package gateway is the reverse proxy that sits in front of the admin
// dashboard. It terminates nothing fancy: it checks the admin session
// cookie, bounces unauthenticated traffic to the login page, and forwards
// everything else to the dashboard backend unchanged.
package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/gracewaylabs/graceway-admin/pkg/config"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/logger"
)

// NewHandler builds the gateway's HTTP handler.
func NewHandler(cfg *config.Config, logg *logger.Logger) (http.Handler, error) {
	if cfg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "config required")
	}

	backend, err := url.Parse(cfg.Gateway.BackendURL)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid backend url")
	}
	if backend.Scheme == "" || backend.Host == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "backend url must be absolute")
	}

	proxy := httputil.NewSingleHostReverseProxy(backend)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, proxyErr error) {
		if logg != nil {
			logg.Error(r.Context(), "gateway.proxy.error", proxyErr)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"success":false,"message":"upstream unavailable"}`))
	}

	sessions := newGuard(cfg.Cookie.Name, cfg.Gateway.LoginPath, cfg.Gateway.PublicPath, logg)

	r := chi.NewRouter()
	r.Use(
		recoverer(logg),
		requestID(logg),
		logging(logg),
		corsPolicy(cfg.Gateway.Origins),
	)

	r.Get("/healthz", healthz(cfg))

	r.Group(func(r chi.Router) {
		r.Use(sessions.middleware)
		r.Handle("/*", proxy)
	})

	return r, nil
}

func healthz(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Graceway-Env", cfg.App.Env)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
