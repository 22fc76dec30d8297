// Package upload sends image and document assets to the platform's upload
// service.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// MaxSize is the upload service's per-file limit.
const MaxSize = 10 << 20 // 10MB

// Kind is an asset category with its own accepted types and in-flight slot.
type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

// ErrUploadInFlight means an upload of the same kind is already running.
// Rapid repeated triggers fail fast instead of duplicating the upload.
var ErrUploadInFlight = errors.New("upload already in flight")

// UploadError reports a rejected or failed upload. The record is unaffected
// and the asset field stays unset.
type UploadError struct {
	Kind   Kind
	File   string
	Reason string
	Err    error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("uploading %s %q: %s: %v", e.Kind, e.File, e.Reason, e.Err)
	}
	return fmt.Sprintf("uploading %s %q: %s", e.Kind, e.File, e.Reason)
}

func (e *UploadError) Unwrap() error { return e.Err }

var acceptedExtensions = map[Kind]map[string]bool{
	KindImage: {
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	},
	KindDocument: {
		".pdf": true, ".doc": true, ".docx": true, ".txt": true,
		".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true,
	},
}

// Client uploads assets over multipart POST. One upload per kind may be in
// flight at a time.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	mu       sync.Mutex
	inFlight map[Kind]bool
}

// New creates an upload client.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		inFlight:   make(map[Kind]bool),
	}
}

// Result is the upload service's response.
type Result struct {
	URL string `json:"url"`
}

// UploadImage uploads one image file and returns its hosted URL.
func (c *Client) UploadImage(ctx context.Context, name string, size int64, r io.Reader) (*Result, error) {
	return c.upload(ctx, KindImage, name, size, r)
}

// UploadDocument uploads one document file and returns its hosted URL.
func (c *Client) UploadDocument(ctx context.Context, name string, size int64, r io.Reader) (*Result, error) {
	return c.upload(ctx, KindDocument, name, size, r)
}

func (c *Client) upload(ctx context.Context, kind Kind, name string, size int64, r io.Reader) (*Result, error) {
	// Preflight: wrong type and oversized files are rejected before any
	// network traffic.
	if err := checkFile(kind, name, size); err != nil {
		return nil, err
	}

	if !c.acquire(kind) {
		return nil, &UploadError{Kind: kind, File: name, Reason: "rejected", Err: ErrUploadInFlight}
	}
	defer c.release(kind)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(name))
	if err != nil {
		return nil, &UploadError{Kind: kind, File: name, Reason: "building request", Err: err}
	}
	if _, err := io.Copy(part, io.LimitReader(r, MaxSize+1)); err != nil {
		return nil, &UploadError{Kind: kind, File: name, Reason: "reading file", Err: err}
	}
	if err := mw.Close(); err != nil {
		return nil, &UploadError{Kind: kind, File: name, Reason: "building request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/uploads/"+string(kind), &buf)
	if err != nil {
		return nil, &UploadError{Kind: kind, File: name, Reason: "building request", Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UploadError{Kind: kind, File: name, Reason: "service unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &UploadError{
			Kind:   kind,
			File:   name,
			Reason: fmt.Sprintf("service returned %d: %s", resp.StatusCode, bytes.TrimSpace(body)),
		}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &UploadError{Kind: kind, File: name, Reason: "decoding response", Err: err}
	}
	if result.URL == "" {
		return nil, &UploadError{Kind: kind, File: name, Reason: "service returned no URL"}
	}
	return &result, nil
}

// checkFile validates type and size for the kind.
func checkFile(kind Kind, name string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !acceptedExtensions[kind][ext] {
		return &UploadError{Kind: kind, File: name, Reason: fmt.Sprintf("file type %q not accepted", ext)}
	}
	if size > MaxSize {
		return &UploadError{Kind: kind, File: name, Reason: fmt.Sprintf("file is %d bytes, limit is %d", size, MaxSize)}
	}
	return nil
}

func (c *Client) acquire(kind Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[kind] {
		return false
	}
	c.inFlight[kind] = true
	return true
}

func (c *Client) release(kind Kind) {
	c.mu.Lock()
	c.inFlight[kind] = false
	c.mu.Unlock()
}
