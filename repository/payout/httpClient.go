package payoutrepo

import (
	"bytes"
	"context"
	"encoding/json"
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

func (r *httpRepo) Send(ctx context.Context, account string, amount int64) error {
	body := map[string]any{
		"account": account,
		"amount":  amount,
	}
	b, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/payouts", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.SetBasicAuth(r.apiKey, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("payout send failed: %s", resp.Status)
	}
	return nil
}
