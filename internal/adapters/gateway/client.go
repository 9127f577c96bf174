package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/funanimation/fa-cli/internal/domain"
	"github.com/funanimation/fa-cli/internal/ports"
	"github.com/google/uuid"
)

const (
	maxResponseBytes = 1 << 20
	requestTimeout   = 10 * time.Second
	userAgent        = "fa/client"
)

// Client talks to the Funanimation backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.Gateway = (*Client)(nil)

// APIError carries a non-success backend response. Message is extracted from
// the structured error body when available, else the raw body, else the
// status text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus reports the response status code. The session layer uses it to
// tell a rejected credential apart from a transport failure.
func (e *APIError) HTTPStatus() int {
	return e.Status
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type credentialResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *Client) Register(ctx context.Context, email, password string) (domain.Credential, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp credentialResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", "", payload, &resp); err != nil {
		return "", err
	}
	return domain.Credential(resp.AccessToken), nil
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.Credential, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp credentialResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", payload, &resp); err != nil {
		return "", err
	}
	return domain.Credential(resp.AccessToken), nil
}

func (c *Client) Me(ctx context.Context, credential domain.Credential) (domain.Profile, error) {
	var profile domain.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", credential, nil, &profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (c *Client) Usage(ctx context.Context, credential domain.Credential) (domain.UsageSnapshot, error) {
	var usage domain.UsageSnapshot
	if err := c.doJSON(ctx, http.MethodGet, "/usage", credential, nil, &usage); err != nil {
		return domain.UsageSnapshot{}, err
	}
	return usage, nil
}

type jobsResponse struct {
	Jobs []domain.Job `json:"jobs"`
}

func (c *Client) Jobs(ctx context.Context, credential domain.Credential) ([]domain.Job, error) {
	var resp jobsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/jobs", credential, nil, &resp); err != nil {
		return nil, err
	}

	for i := range resp.Jobs {
		resp.Jobs[i].Status = domain.NormalizeJobStatus(string(resp.Jobs[i].Status))
	}

	return resp.Jobs, nil
}

func (c *Client) Generate(ctx context.Context, credential domain.Credential, request domain.GenerationRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/generate", credential, request, nil)
}

func (c *Client) Subscribe(ctx context.Context, credential domain.Credential, plan domain.Plan) error {
	payload := map[string]string{"plan": string(plan)}
	return c.doJSON(ctx, http.MethodPost, "/subscribe", credential, payload, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, credential domain.Credential, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("User-Agent", userAgent)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if !credential.IsZero() {
		request.Header.Set("Authorization", "Bearer "+string(credential))
	}
	if method == http.MethodPost {
		request.Header.Set("X-Request-Id", uuid.NewString())
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &APIError{Status: response.StatusCode, Message: errorMessage(response, data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func errorMessage(response *http.Response, body []byte) string {
	var structured struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &structured); err == nil {
		if structured.Detail != "" {
			return structured.Detail
		}
		if structured.Error != "" {
			return structured.Error
		}
	}

	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}

	return response.Status
}
