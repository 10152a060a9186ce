package apiclient

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Cookie attributes are contractual: the dashboard's route-guard middleware
// reads this exact cookie to decide whether to let a page render.
const (
	CookieName   = "admin_access_token"
	CookieMaxAge = 10 * 24 * time.Hour
)

// CookieSink mirrors the access token into whatever cookie medium the host
// environment provides. Implementations must tolerate repeated calls.
type CookieSink interface {
	SetAccessToken(token string)
	Clear()
}

// BuildAccessCookie returns the admin cookie carrying the given token.
func BuildAccessCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		SameSite: http.SameSiteStrictMode,
	}
}

// ExpiredAccessCookie returns the admin cookie in its expired form.
func ExpiredAccessCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
	}
}

// NoopCookieSink is used in contexts with no cookie medium, such as the CLI.
type NoopCookieSink struct{}

func (NoopCookieSink) SetAccessToken(string) {}
func (NoopCookieSink) Clear()                {}

// JarCookieSink writes the admin cookie into an http.CookieJar scoped to the
// dashboard origin.
type JarCookieSink struct {
	jar    http.CookieJar
	origin *url.URL
}

// NewJarCookieSink scopes the sink to the host of the given base URL.
func NewJarCookieSink(jar http.CookieJar, baseURL string) (*JarCookieSink, error) {
	if jar == nil {
		return nil, fmt.Errorf("cookie jar is required")
	}
	origin, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse cookie origin: %w", err)
	}
	if origin.Scheme == "" || origin.Host == "" {
		return nil, fmt.Errorf("cookie origin %q must be absolute", baseURL)
	}
	return &JarCookieSink{jar: jar, origin: origin}, nil
}

func (s *JarCookieSink) SetAccessToken(token string) {
	s.jar.SetCookies(s.origin, []*http.Cookie{BuildAccessCookie(token)})
}

func (s *JarCookieSink) Clear() {
	s.jar.SetCookies(s.origin, []*http.Cookie{ExpiredAccessCookie()})
}
