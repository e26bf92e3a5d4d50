package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"orders-report-service/internal/platform/httpx"
	"orders-report-service/internal/platform/obs"
	"time"
)

const (
	defaultBaseURL   = "https://sheets.googleapis.com/v4"
	defaultCellRange = "A1:DZ5000"
)

// Publisher implements ports.SheetPublisher against the Sheets v4 values API.
// Each publish clears the destination range before writing, so rows left over
// from a longer previous import never survive.
//
// The publisher is safe for concurrent use.
type Publisher struct {
	session       *http.Client
	baseURL       string
	tokens        TokenSource
	spreadsheetID string
	cellRange     string
}

func NewPublisher(tokens TokenSource, spreadsheetID, cellRange string) (*Publisher, error) {
	if tokens == nil {
		return nil, errors.New("token source is nil")
	}
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet id is empty")
	}
	if cellRange == "" {
		cellRange = defaultCellRange
	}

	return &Publisher{
		session:       &http.Client{Timeout: 30 * time.Second},
		baseURL:       defaultBaseURL,
		tokens:        tokens,
		spreadsheetID: spreadsheetID,
		cellRange:     cellRange,
	}, nil
}

type valueRange struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// Publish clears the tab's cell range and writes values starting at its origin.
func (p *Publisher) Publish(ctx context.Context, sheetName string, values [][]string) (err error) {
	defer obs.Time(ctx, "sheets.Publish")(&err)

	if sheetName == "" {
		return errors.New("publish sheet: sheet name is empty")
	}

	rng := sheetName + "!" + p.cellRange
	valuesURL := fmt.Sprintf(
		"%s/spreadsheets/%s/values/%s",
		p.baseURL,
		url.PathEscape(p.spreadsheetID),
		url.PathEscape(rng),
	)

	resp, err := httpx.DoWithRetry(ctx, p.session, func() (*http.Request, error) {
		return p.newRequest(ctx, http.MethodPost, valuesURL+":clear", bytes.NewReader([]byte("{}")))
	})
	if err != nil {
		return fmt.Errorf("clear range %q: %w", rng, err)
	}
	resp.Body.Close()

	payload, err := json.Marshal(valueRange{
		Range:          rng,
		MajorDimension: "ROWS",
		Values:         values,
	})
	if err != nil {
		return fmt.Errorf("marshal values for %q: %w", rng, err)
	}

	resp, err = httpx.DoWithRetry(ctx, p.session, func() (*http.Request, error) {
		req, err := p.newRequest(ctx, http.MethodPut, valuesURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("valueInputOption", "USER_ENTERED")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("update range %q: %w", rng, err)
	}
	resp.Body.Close()

	return nil
}
