package source

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"patrimonio/internal/ingest"
	custom_error "patrimonio/pkg/errors"
	"patrimonio/pkg/models"
)

// NewHTTPClient builds the shared resty client. Published-sheet mirrors sit
// behind aggressive intermediary caches, hence the no-cache headers; the
// timeout bounds every individual fetch attempt.
func NewHTTPClient(timeout time.Duration) *resty.Client {
	client := resty.New()
	client.
		SetHeader("Cache-Control", "no-cache, no-store, must-revalidate").
		SetHeader("Pragma", "no-cache").
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; InventorySystem/1.0)").
		SetTimeout(timeout)
	return client
}

// JSONSource fetches asset rows from an endpoint returning a JSON payload:
// a top-level row array, or an object exposing it under "content"/"data".
type JSONSource struct {
	client *resty.Client
	url    string
}

func NewJSONSource(client *resty.Client, url string) *JSONSource {
	return &JSONSource{client: client, url: url}
}

func (s *JSONSource) Name() string {
	return "json:" + s.url
}

func (s *JSONSource) Fetch(ctx context.Context) ([]models.SheetRow, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json, */*").
		Get(s.url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &custom_error.UpstreamShapeError{
			Source: s.Name(),
			Reason: fmt.Sprintf("http status %d", resp.StatusCode()),
		}
	}

	return ingest.DecodeJSONRows(resp.Body())
}

// CSVSource fetches rows from a published-CSV endpoint.
type CSVSource struct {
	client *resty.Client
	url    string
}

func NewCSVSource(client *resty.Client, url string) *CSVSource {
	return &CSVSource{client: client, url: url}
}

func (s *CSVSource) Name() string {
	return "csv:" + s.url
}

func (s *CSVSource) Fetch(ctx context.Context) ([]models.SheetRow, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv, text/plain, */*").
		Get(s.url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &custom_error.UpstreamShapeError{
			Source: s.Name(),
			Reason: fmt.Sprintf("http status %d", resp.StatusCode()),
		}
	}

	return ingest.ParseCSV(string(resp.Body()))
}
