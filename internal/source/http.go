package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/model"
)

// apiResponse is the envelope of read responses.
type apiResponse struct {
	Message string              `json:"message,omitempty"`
	Data    []model.SalesRecord `json:"data"`
	Success bool                `json:"success"`
}

// HTTPClient talks to the remote sales endpoint.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPClient creates a client for baseURL, e.g. http://localhost:3000/api.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid source url %q", common.ErrInvalidConfig, baseURL)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Fetch reads every record from GET {base}/sales.
func (c *HTTPClient) Fetch(ctx context.Context) ([]model.SalesRecord, error) {
	var resp apiResponse
	if err := c.do(ctx, http.MethodGet, "/sales", nil, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "request was not successful"
		}
		return nil, fmt.Errorf("%w: %s", common.ErrSourceUnavailable, msg)
	}

	for _, r := range resp.Data {
		if invalidAmount(r.Sales) || invalidAmount(r.Revenue) {
			return nil, fmt.Errorf("%w: record %q has invalid sales or revenue", common.ErrSourceUnavailable, r.ID)
		}
	}

	if resp.Data == nil {
		return []model.SalesRecord{}, nil
	}
	return resp.Data, nil
}

// invalidAmount reports whether v cannot be charted as a sales or revenue figure.
func invalidAmount(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}

// Create posts a new record to {base}/sales and returns the stored record.
func (c *HTTPClient) Create(ctx context.Context, record model.NewSalesRecord) (*model.SalesRecord, error) {
	var created model.SalesRecord
	if err := c.do(ctx, http.MethodPost, "/sales", record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update sends a partial update to {base}/sales/{id} and returns the stored record.
func (c *HTTPClient) Update(ctx context.Context, id string, patch model.SalesPatch) (*model.SalesRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty record id", common.ErrNotFound)
	}

	var updated model.SalesRecord
	if err := c.do(ctx, http.MethodPut, "/sales/"+url.PathEscape(id), patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	slog.Debug("Requesting sales endpoint", "method", method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", common.ErrNotFound, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: API error: %s: %s", common.ErrSourceUnavailable, resp.Status, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
