package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
)

// User is the authenticated admin profile returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginParams are the credentials posted to /auth/login.
type LoginParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResult is the authenticated session handed back on login.
type LoginResult struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"-"`
}

type authPayload struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges credentials for a token pair and stores it.
func (c *Client) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	if err := ValidateParams(params); err != nil {
		return nil, err
	}

	payload, err := c.Post(ctx, "/auth/login", params, nil)
	if err != nil {
		return nil, err
	}
	session, err := Decode[authPayload](payload)
	if err != nil {
		return nil, err
	}
	if session.AccessToken == "" || session.RefreshToken == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "login response missing token pair")
	}

	c.tokens.SetTokens(ctx, session.AccessToken, session.RefreshToken)
	return &LoginResult{
		User: session.User,
		Tokens: TokenPair{
			AccessToken:  session.AccessToken,
			RefreshToken: session.RefreshToken,
		},
	}, nil
}

// Logout tells the backend to drop the session, best-effort, and always
// clears local state. Backend errors are swallowed.
func (c *Client) Logout(ctx context.Context) {
	if _, err := c.Post(ctx, "/auth/logout", nil, nil); err != nil && c.logg != nil {
		c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), "logout request failed")
	}
	c.tokens.ClearTokens(ctx)
}

// Profile fetches the authenticated admin profile.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	payload, err := c.Get(ctx, "/auth/profile", nil)
	if err != nil {
		return nil, err
	}
	user, err := Decode[User](payload)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type refreshCall struct {
	done  chan struct{}
	token string
	ok    bool
}

// refreshAccessToken runs the refresh sub-protocol, sharing a single
// in-flight refresh between concurrent 401s so at most one refresh request
// is ever outstanding.
func (c *Client) refreshAccessToken(ctx context.Context) (string, bool) {
	c.refreshMu.Lock()
	if call := c.inflight; call != nil {
		c.refreshMu.Unlock()
		select {
		case <-call.done:
			return call.token, call.ok
		case <-ctx.Done():
			return "", false
		}
	}
	call := &refreshCall{done: make(chan struct{})}
	c.inflight = call
	c.refreshMu.Unlock()

	call.token, call.ok = c.doRefresh(ctx)

	c.refreshMu.Lock()
	c.inflight = nil
	c.refreshMu.Unlock()
	close(call.done)

	return call.token, call.ok
}

// doRefresh posts the refresh token on a plain, unauthenticated request.
// Any failure, transport-level included, clears the pair: a refresh token
// the backend rejects is dead and keeping it would loop.
func (c *Client) doRefresh(ctx context.Context) (string, bool) {
	refresh := c.tokens.RefreshToken()
	if refresh == "" {
		return "", false
	}

	body, err := json.Marshal(map[string]string{"refreshToken": refresh})
	if err != nil {
		return c.failRefresh(ctx)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", bytes.NewReader(body))
	if err != nil {
		return c.failRefresh(ctx)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestedWith, requestedWithValue)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failRefresh(ctx)
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failRefresh(ctx)
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return c.failRefresh(ctx)
	}
	pair := unwrapTokenPair(decoded)
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return c.failRefresh(ctx)
	}

	c.tokens.SetTokens(ctx, pair.AccessToken, pair.RefreshToken)
	if c.metrics != nil {
		c.metrics.IncRefreshSuccess()
	}
	if c.logg != nil {
		c.logg.Debug(ctx, "access token refreshed")
	}
	return pair.AccessToken, true
}

func (c *Client) failRefresh(ctx context.Context) (string, bool) {
	c.tokens.ClearTokens(ctx)
	if c.metrics != nil {
		c.metrics.IncRefreshFailure()
	}
	return "", false
}

// unwrapTokenPair accepts both the bare pair and the enveloped
// {data:{accessToken,refreshToken}} form.
func unwrapTokenPair(decoded map[string]any) TokenPair {
	source := decoded
	if data, ok := decoded["data"].(map[string]any); ok {
		source = data
	}
	pair := TokenPair{}
	if access, ok := source["accessToken"].(string); ok {
		pair.AccessToken = access
	}
	if refresh, ok := source["refreshToken"].(string); ok {
		pair.RefreshToken = refresh
	}
	return pair
}
