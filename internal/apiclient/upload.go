package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
)

// Upload sends a file as multipart/form-data. Media endpoints bypass the
// JSON transport because of the content-type difference; the bearer header
// is attached manually and the error-extraction rules are shared with the
// generic path. There is no automatic 401 retry here.
func (c *Client) Upload(ctx context.Context, path, field, filename string, content io.Reader, extra map[string]string) (any, error) {
	fullURL, err := c.resolveURL(path, nil)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "build multipart body")
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read upload content")
	}
	for key, value := range extra {
		if err := writer.WriteField(key, value); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "write multipart field")
		}
	}
	if err := writer.Close(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, &buf)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(headerRequestedWith, requestedWithValue)
	req.Header.Set(headerRequestID, uuid.NewString())
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, fmt.Sprintf("upload %s failed", path))
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(resp)
	}
	return c.decodeSuccess(fullURL, resp)
}
