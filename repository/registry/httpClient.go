package registryrepo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"adspot/util/httpx"
)

type httpRepo struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTP(baseURL, apiKey string) Repo {
	return &httpRepo{baseURL: baseURL, apiKey: apiKey, client: httpx.Client()}
}

func (r *httpRepo) OwnerOf(ctx context.Context, assetID int64) (string, error) {
	url := fmt.Sprintf("%s/v1/assets/%d/owner", r.baseURL, assetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("registry ownerOf failed: %s", resp.Status)
	}

	var out struct {
		Owner string `json:"owner"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Owner == "" {
		return "", errors.New("registry: empty owner")
	}
	return out.Owner, nil
}

func (r *httpRepo) Transfer(ctx context.Context, from, to string, assetID int64) error {
	body := map[string]any{
		"asset_id": assetID,
		"from":     from,
		"to":       to,
	}
	b, _ := json.Marshal(body)
	url := fmt.Sprintf("%s/v1/transfers", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("registry transfer failed: %s", resp.Status)
	}
	return nil
}

func (r *httpRepo) IsApprovedOperator(ctx context.Context, owner, operator string) (bool, error) {
	url := fmt.Sprintf("%s/v1/accounts/%s/operators/%s", r.baseURL, owner, operator)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return false, fmt.Errorf("registry approval check failed: %s", resp.Status)
	}

	var out struct {
		Approved bool `json:"approved"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Approved, nil
}
