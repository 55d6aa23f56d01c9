package httputils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// PostJSON posts body as JSON and decodes a 200 response into resp.
func PostJSON(ctx context.Context, client *http.Client, url string, body interface{}, resp interface{}) error {
	return PostJSONWithAuth(ctx, client, url, "", body, resp)
}

// PostJSONWithAuth is PostJSON with an optional bearer token.
func PostJSONWithAuth(ctx context.Context, client *http.Client, url, apiKey string, body interface{}, resp interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	if client == nil {
		client = http.DefaultClient
	}
	r, err := client.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(r.Body, 4096))
		return fmt.Errorf("bad status: %d - %s", r.StatusCode, bytes.TrimSpace(b))
	}
	if resp != nil {
		return json.NewDecoder(r.Body).Decode(resp)
	}
	return nil
}
