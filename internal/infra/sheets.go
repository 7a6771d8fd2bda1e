package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SheetsPayload is sent by the worker pool to the Sheets bridge sidecar.
// The sidecar owns the Google service-account credentials and translates
// these requests into Sheets API calls; the core backend never touches
// OAuth material.
type SheetsPayload struct {
	SpreadsheetID string   `json:"spreadsheet_id"`
	SheetName     string   `json:"sheet_name"`
	Operation     string   `json:"operation"` // append | update | delete
	EntityID      string   `json:"entity_id"`
	Row           []string `json:"row,omitempty"`
}

// SheetsResponse is returned by the bridge after the Sheets API call.
type SheetsResponse struct {
	Result       string `json:"result"` // "ok" | "error"
	UpdatedRange string `json:"updated_range,omitempty"`
	Message      string `json:"message,omitempty"`
}

// SheetsClient is an HTTP client that delegates Google Sheets communication
// to the bridge sidecar. The decoupling isolates Sheets quota and auth
// failures from the core backend.
type SheetsClient struct {
	bridgeURL  string
	httpClient *http.Client
}

func NewSheetsClient(bridgeURL string) *SheetsClient {
	return &SheetsClient{
		bridgeURL:  bridgeURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Push sends a row operation to the bridge and returns its response.
func (c *SheetsClient) Push(ctx context.Context, payload SheetsPayload) (*SheetsResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("sheets: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.bridgeURL+"/rows", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("sheets: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets: bridge unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets: bridge returned %d", resp.StatusCode)
	}

	var result SheetsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("sheets: decode response: %w", err)
	}
	return &result, nil
}
