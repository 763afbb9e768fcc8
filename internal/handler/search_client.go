package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/urbanest/rental-search/api/internal/dto"
)

// SearchClient posts composed filter sets to the listing engine and decodes
// the result page. It implements service.Searcher.
type SearchClient struct {
	client  *http.Client
	baseURL string
}

// NewSearchClient builds a listing engine client, auto-configuring an ID
// token client when the engine sits behind IAM.
func NewSearchClient(client *http.Client, baseURL string) *SearchClient {
	if baseURL == "" {
		panic("search engine baseURL must not be empty")
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if client == nil {
		idc, err := idtoken.NewClient(context.Background(), baseURL)
		if err != nil {
			client = &http.Client{Timeout: 10 * time.Second}
		} else {
			client = idc
		}
	}
	return &SearchClient{client: client, baseURL: baseURL}
}

// Search posts the filter set to the engine's query endpoint.
func (c *SearchClient) Search(ctx context.Context, filters dto.FilterSet, requestID string) (*dto.SearchOutcome, error) {
	body, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("marshal filter set: %w", err)
	}

	url := c.baseURL + "/query"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create engine request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("engine request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("engine error: %s", extractEngineError(resp.Body))
	}

	var engineResp struct {
		Data  *dto.SearchOutcome `json:"data"`
		Error string             `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&engineResp); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode engine response: %w", err)
	}
	if engineResp.Error != "" {
		return nil, fmt.Errorf("engine error: %s", engineResp.Error)
	}
	if engineResp.Data == nil {
		engineResp.Data = &dto.SearchOutcome{}
	}
	return engineResp.Data, nil
}

func extractEngineError(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "unknown engine failure"
	}

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
