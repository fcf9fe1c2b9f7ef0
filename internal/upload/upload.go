// Package upload talks to the third-party image host. It is a separate
// failure domain from the backend API: a trip is never created when its
// selected image failed to upload.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Error is any image-host failure. The upload is atomic: either a usable
// public URL came back or the whole attempt failed.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("image upload failed: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Uploader performs single-attempt unsigned uploads against a
// Cloudinary-style endpoint: multipart form with the file, an upload
// preset, and a target folder. No retry, no resumability.
type Uploader struct {
	endpoint string
	preset   string
	folder   string
	httpc    *http.Client
}

// New constructs an Uploader for the given endpoint, preset, and folder.
func New(endpoint, preset, folder string, timeout time.Duration) *Uploader {
	return &Uploader{
		endpoint: endpoint,
		preset:   preset,
		folder:   folder,
		httpc:    &http.Client{Timeout: timeout},
	}
}

// Upload sends imageBytes and returns the public secure URL.
func (u *Uploader) Upload(ctx context.Context, imageBytes []byte) (string, error) {
	if len(imageBytes) == 0 {
		return "", &Error{Err: fmt.Errorf("empty image data")}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "image.jpg")
	if err != nil {
		return "", &Error{Err: err}
	}
	if _, err := part.Write(imageBytes); err != nil {
		return "", &Error{Err: err}
	}
	if err := writer.WriteField("upload_preset", u.preset); err != nil {
		return "", &Error{Err: err}
	}
	if u.folder != "" {
		if err := writer.WriteField("folder", u.folder); err != nil {
			return "", &Error{Err: err}
		}
	}
	if err := writer.Close(); err != nil {
		return "", &Error{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &buf)
	if err != nil {
		return "", &Error{Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpc.Do(req)
	if err != nil {
		return "", &Error{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{Err: fmt.Errorf("image host returned %d: %s", resp.StatusCode, body)}
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &Error{Err: fmt.Errorf("decoding upload response: %w", err)}
	}
	if result.SecureURL == "" {
		return "", &Error{Err: fmt.Errorf("upload response missing secure_url")}
	}
	return result.SecureURL, nil
}
