// Package media uploads image files to the external media host. The host
// is a pure request/response boundary: it accepts multipart file data and
// returns one {id, url, width, height, mime} record per file, which becomes
// the lightweight reference the rest of the system stores instead of the
// binary payload.
package media

import (
	"bytes"
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
)

// File is one image to upload.
type File struct {
	Name    string
	Mime    string
	Content []byte
}

// Client posts files to the upload endpoint.
type Client struct {
	http *resty.Client
	url  string
}

// NewClient builds a Client for the given upload endpoint URL.
func NewClient(uploadURL string) *Client {
	return &Client{
		http: resty.New().SetTimeout(30 * time.Second),
		url:  uploadURL,
	}
}

type uploadResponse struct {
	Images []domain.ImageRef `json:"images"`
	Error  string            `json:"error"`
}

// Upload sends files as multipart "files" parts and returns their media
// references. Transient failures are retried with exponential backoff; a
// 4xx response is not retried. Callers are expected to treat a failed
// upload as "entity proceeds without the attachment", not as a fatal error.
func (c *Client) Upload(ctx context.Context, files []File) ([]domain.ImageRef, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("media.Client.Upload: %w: no files", domain.ErrValidation)
	}

	var out uploadResponse
	op := func() error {
		req := c.http.R().SetContext(ctx).SetResult(&out)
		for _, f := range files {
			req.SetMultipartField("files", f.Name, f.Mime, bytes.NewReader(f.Content))
		}
		resp, err := req.Post(c.url)
		if err != nil {
			return err
		}
		if resp.IsError() {
			err := fmt.Errorf("media host returned %s", resp.Status())
			if resp.StatusCode() < 500 {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, fmt.Errorf("media.Client.Upload: %w", err)
	}
	return out.Images, nil
}
