package rembg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	RemovePath         = "/api/remove"
	FileField          = "file"
	ModelField         = "model"
	UploadFileName     = "image"
	DefaultHTTPTimeout = 2 * time.Minute

	// errorBodyLimit caps how much of a failed response is quoted in errors
	errorBodyLimit = 512
)

// HTTPRemover posts images to a running `rembg s` server
type HTTPRemover struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewHTTPRemover creates a remover for the server at baseURL
func NewHTTPRemover(baseURL, model string, timeout time.Duration) *HTTPRemover {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &HTTPRemover{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// Remove uploads the image as multipart form data and returns the response body
func (h *HTTPRemover) Remove(ctx context.Context, image []byte) ([]byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(FileField, UploadFileName)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	if h.model != "" {
		if err := writer.WriteField(ModelField, h.model); err != nil {
			return nil, fmt.Errorf("write model field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+RemovePath, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		snippet := string(data)
		if len(snippet) > errorBodyLimit {
			snippet = snippet[:errorBodyLimit]
		}
		return nil, fmt.Errorf("rembg server returned %s: %s", resp.Status, strings.TrimSpace(snippet))
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("rembg server returned an empty body")
	}

	slog.Debug("rembg server responded", "bytes", len(data), "content_type", resp.Header.Get("Content-Type"))
	return data, nil
}
