package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
)

// DefaultResource is the well-known document name, resolved against the
// page's own origin.
const DefaultResource = "data.json"

// LoadError reports why the Profile Document could not be loaded. Network,
// status and payload failures all surface as a LoadError so callers can treat
// them as one "data unavailable" outcome.
type LoadError struct {
	URL     string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("load %s: %s", e.URL, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Loader fetches the Profile Document. It performs a single request per Load
// call and never retries.
type Loader struct {
	BaseURL  string
	Resource string
	Client   *http.Client
}

// NewLoader returns a loader for data.json relative to baseURL. The client has
// no timeout; a hung request hangs the caller until ctx is done.
func NewLoader(baseURL string) *Loader {
	return &Loader{
		BaseURL:  baseURL,
		Resource: DefaultResource,
		Client:   defaultClient,
	}
}

// defaultClient also understands file:// URLs so a document on disk can be
// loaded the same way as one served over HTTP.
var defaultClient = func() *http.Client {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.RegisterProtocol("file", http.NewFileTransport(http.Dir("/")))
	return &http.Client{Transport: t}
}()

// FileBaseURL returns the file:// URL of dir with a trailing slash, so the
// document resolves inside it.
func FileBaseURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs) + "/"}
	return u.String(), nil
}

// URL returns the absolute address the loader will request.
func (l *Loader) URL() (string, error) {
	base, err := url.Parse(l.BaseURL)
	if err != nil {
		return "", err
	}
	if base.Scheme == "" {
		return "", fmt.Errorf("base URL %q is not absolute", l.BaseURL)
	}
	resource := l.Resource
	if resource == "" {
		resource = DefaultResource
	}
	ref, err := url.Parse(resource)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

// Load fetches and decodes the document.
func (l *Loader) Load(ctx context.Context) (*Document, error) {
	target, err := l.URL()
	if err != nil {
		return nil, &LoadError{URL: l.BaseURL, Message: "invalid base URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &LoadError{URL: target, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = defaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{URL: target, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{URL: target, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{URL: target, Message: "failed to read body", Cause: err}
	}

	doc, err := Parse(body)
	if err != nil {
		return nil, &LoadError{URL: target, Message: "malformed document", Cause: err}
	}
	return doc, nil
}

// Parse decodes a Profile Document. The payload is accepted or rejected as a
// whole: a document missing one of its top-level sections is malformed.
func Parse(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("document is null")
	}
	for _, key := range []string{"personalInfo", "projects", "experience", "skills"} {
		v, ok := raw[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, fmt.Errorf("missing %q", key)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
