package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client is the HTTP wrapper for the PostgREST interface of the hosted
// database. All row-level filtering happens through query parameters.
type Client struct {
	baseURL      string
	apiKey       string
	serviceToken string
	httpClient   *http.Client
}

// NewClient creates a new database REST client.
func NewClient(baseURL, apiKey, serviceToken string) *Client {
	if serviceToken == "" {
		serviceToken = apiKey
	}
	return &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		serviceToken: serviceToken,
		httpClient:   &http.Client{},
	}
}

// Insert creates rows via POST /rest/v1/{table} and decodes the returned
// representation into out.
func (c *Client) Insert(ctx context.Context, table string, body any, out any) error {
	_, err := c.do(ctx, http.MethodPost, table, nil, body, out, "")
	return err
}

// Select reads rows via GET /rest/v1/{table} with PostgREST filters.
func (c *Client) Select(ctx context.Context, table string, query url.Values, out any) error {
	_, err := c.do(ctx, http.MethodGet, table, query, nil, out, "")
	return err
}

// SelectCount reads rows like Select and additionally asks for the exact
// number of rows matching the filters regardless of paging, which comes
// back through the Content-Range header.
func (c *Client) SelectCount(ctx context.Context, table string, query url.Values, out any) (int, error) {
	return c.do(ctx, http.MethodGet, table, query, nil, out, "count=exact")
}

// Update patches rows matching the filters and decodes the returned
// representation into out.
func (c *Client) Update(ctx context.Context, table string, query url.Values, body any, out any) error {
	_, err := c.do(ctx, http.MethodPatch, table, query, body, out, "")
	return err
}

// Delete removes rows matching the filters.
func (c *Client) Delete(ctx context.Context, table string, query url.Values) error {
	_, err := c.do(ctx, http.MethodDelete, table, query, nil, nil, "")
	return err
}

func (c *Client) do(ctx context.Context, method, table string, query url.Values, body, out any, prefer string) (int, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return -1, fmt.Errorf("failed to marshal %s request: %w", table, err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return -1, fmt.Errorf("failed to build %s request: %w", table, err)
	}
	httpReq.Header.Set("apikey", c.apiKey)
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.serviceToken))
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if out != nil && method != http.MethodGet {
		prefer = "return=representation"
	}
	if prefer != "" {
		httpReq.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return -1, fmt.Errorf("failed to call database %s API: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return -1, fmt.Errorf("database API %s error %d: %s", table, resp.StatusCode, string(raw))
	}

	total := contentRangeTotal(resp.Header.Get("Content-Range"))

	if out == nil {
		return total, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return -1, fmt.Errorf("failed to decode %s response: %w", table, err)
	}
	return total, nil
}

// contentRangeTotal parses the row count out of a PostgREST Content-Range
// header such as "0-19/57". Returns -1 when the count is absent ("*").
func contentRangeTotal(header string) int {
	slash := strings.LastIndexByte(header, '/')
	if slash < 0 {
		return -1
	}
	n, err := strconv.Atoi(header[slash+1:])
	if err != nil {
		return -1
	}
	return n
}
