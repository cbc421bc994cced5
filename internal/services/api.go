// API service for making raw HTTP requests to the movie catalog API
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/shared"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "http://localhost:8000/api"
	defaultTimeout = 15 * time.Second
	defaultRate    = 10
)

// identityHeader carries the current username on every request. It is the
// entire auth mechanism: the placeholder token is never sent or validated.
const identityHeader = "X-Username"

// requestIDHeader correlates client log lines with server access logs.
const requestIDHeader = "X-Request-ID"

// SessionReader exposes read-only access to the current session identity.
// The client never writes session state; only auth actions do.
type SessionReader interface {
	// Username returns the stored username, or "" when logged out.
	Username() string
}

// APIService provides methods for making raw HTTP requests to the catalog
// API. Every outgoing request gets the identity header when a session
// exists. Response errors are passed through to the caller untouched;
// normalization happens at the service layer.
type APIService struct {
	baseURL    string
	httpClient *http.Client
	session    SessionReader
	limiter    *rate.Limiter
	logger     *log.Logger
}

// APIOpts contains configuration options for creating an [APIService].
type APIOpts struct {
	BaseURL string
	Client  *http.Client
	Session SessionReader
	// RatePerSec caps outgoing requests; zero uses the default.
	RatePerSec int
	Logger     *log.Logger
}

// NewAPIService creates a new API service instance for the catalog API.
func NewAPIService(opts APIOpts) *APIService {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: defaultTimeout}
	}
	if opts.RatePerSec <= 0 {
		opts.RatePerSec = defaultRate
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &APIService{
		baseURL:    opts.BaseURL,
		httpClient: opts.Client,
		session:    opts.Session,
		limiter:    rate.NewLimiter(rate.Limit(opts.RatePerSec), opts.RatePerSec),
		logger:     opts.Logger,
	}
}

// SetLogger replaces the service logger (e.g. to redirect into a file while
// the TUI owns the terminal).
func (a *APIService) SetLogger(l *log.Logger) {
	a.logger = l
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// Get performs a GET request to the specified path and returns the raw
// response. The path is appended to the base URL and may carry an encoded
// query string.
func (a *APIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("request throttled: %w", err)
	}

	fullURL := a.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := shared.GenerateID()
	req.Header.Set(requestIDHeader, requestID)

	if a.session != nil {
		if username := a.session.Username(); username != "" {
			req.Header.Set(identityHeader, username)
		}
	}

	a.logger.Debugf("GET %s request_id=%s", fullURL, requestID)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	var jsonData any
	if err := json.Unmarshal(body, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}
