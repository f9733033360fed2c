package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bobmcallan/vibeterms/internal/models"
)

// remoteGlossary talks to the REST API of a running vibeterms-server.
type remoteGlossary struct {
	serverURL  string
	httpClient *http.Client
}

func newRemoteGlossary(serverURL string) *remoteGlossary {
	return &remoteGlossary{
		serverURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// apiError carries the server's error message and status.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return e.Message
}

func (r *remoteGlossary) Search(ctx context.Context, category models.Category, query string) ([]models.Term, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", string(category))
	}
	if query != "" {
		q.Set("q", query)
	}
	path := "/api/terms"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp struct {
		Terms []models.Term `json:"terms"`
	}
	if err := r.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Terms, nil
}

func (r *remoteGlossary) Get(ctx context.Context, id string) (models.Term, error) {
	var term models.Term
	err := r.do(ctx, http.MethodGet, "/api/terms/"+url.PathEscape(id), nil, &term)
	return term, err
}

func (r *remoteGlossary) Generate(ctx context.Context, keyword string) (models.Term, error) {
	var term models.Term
	err := r.do(ctx, http.MethodPost, "/api/terms/generate", map[string]string{"keyword": keyword}, &term)
	return term, err
}

func (r *remoteGlossary) Explain(ctx context.Context, id, question string) (models.ExplainResult, error) {
	var resp struct {
		Text    string         `json:"text"`
		Failure models.Failure `json:"failure"`
	}
	body := map[string]string{}
	if question != "" {
		body["question"] = question
	}
	if err := r.do(ctx, http.MethodPost, "/api/terms/"+url.PathEscape(id)+"/explain", body, &resp); err != nil {
		return models.ExplainResult{}, err
	}
	return models.ExplainResult{Text: resp.Text, Failure: resp.Failure}, nil
}

func (r *remoteGlossary) Delete(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, "/api/terms/"+url.PathEscape(id), nil, nil)
}

func (r *remoteGlossary) Reset(ctx context.Context) error {
	return r.do(ctx, http.MethodPost, "/api/catalog/reset", nil, nil)
}

func (r *remoteGlossary) SetKey(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return r.do(ctx, http.MethodDelete, "/api/settings/api-key", nil, nil)
	}
	return r.do(ctx, http.MethodPut, "/api/settings/api-key", map[string]string{"api_key": key}, nil)
}

func (r *remoteGlossary) MaskedKey(ctx context.Context) (string, error) {
	var resp struct {
		Masked string `json:"masked"`
	}
	err := r.do(ctx, http.MethodGet, "/api/settings/api-key", nil, &resp)
	return resp.Masked, err
}

func (r *remoteGlossary) Close() {}

// do performs an HTTP request with an optional JSON body and decodes the
// JSON response into out when out is non-nil.
func (r *remoteGlossary) do(ctx context.Context, method, path string, data interface{}, out interface{}) error {
	var bodyReader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.serverURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("server request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return &apiError{Status: resp.StatusCode, Message: errResp.Error}
		}
		return &apiError{Status: resp.StatusCode, Message: fmt.Sprintf("server returned %d: %s", resp.StatusCode, string(body))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
