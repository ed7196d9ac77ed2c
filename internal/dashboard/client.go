package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sdr-metrics-api/internal/config"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StatsClient é o acesso do painel à API de métricas
type StatsClient interface {
	DailyStats(ctx context.Context, filters domain.ReportFilters) ([]domain.DailyActivity, error)
	CreateActivity(ctx context.Context, activity domain.DailyActivity) (*domain.DailyActivity, error)
	Report(ctx context.Context, filters domain.ReportFilters) (*domain.DashboardReport, error)
	ProjectROI(ctx context.Context, inputs domain.ROIInputs) (*domain.ProjectionResponse, error)
}

// ResponseError é uma resposta não-2xx da API
type ResponseError struct {
	StatusCode int
	APIError   apiErrors.APIError
}

func (e *ResponseError) Error() string {
	if e.APIError.Code == "" {
		return fmt.Sprintf("requisição falhou com status: %d", e.StatusCode)
	}
	return fmt.Sprintf("requisição falhou com status %d: %s", e.StatusCode, e.APIError.Error())
}

type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) *HTTPClient {
	timeout := cfg.Dashboard.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Dashboard.APIURL,
	}
}

func (c *HTTPClient) DailyStats(ctx context.Context, filters domain.ReportFilters) ([]domain.DailyActivity, error) {
	var response []domain.DailyActivity
	err := c.do(ctx, http.MethodGet, "/api/stats/daily", filterQuery(filters), nil, http.StatusOK, &response)
	return response, err
}

func (c *HTTPClient) CreateActivity(ctx context.Context, activity domain.DailyActivity) (*domain.DailyActivity, error) {
	var response struct {
		Message  string                `json:"message"`
		Activity *domain.DailyActivity `json:"activity"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/activities", nil, activity, http.StatusCreated, &response); err != nil {
		return nil, err
	}
	return response.Activity, nil
}

func (c *HTTPClient) Report(ctx context.Context, filters domain.ReportFilters) (*domain.DashboardReport, error) {
	var response domain.DashboardReport
	if err := c.do(ctx, http.MethodGet, "/api/stats/report", filterQuery(filters), nil, http.StatusOK, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *HTTPClient) ProjectROI(ctx context.Context, inputs domain.ROIInputs) (*domain.ProjectionResponse, error) {
	var response domain.ProjectionResponse
	if err := c.do(ctx, http.MethodPost, "/api/roi/projection", nil, inputs, http.StatusOK, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func filterQuery(filters domain.ReportFilters) url.Values {
	query := url.Values{}
	if filters.Timeframe != "" && filters.Timeframe != domain.TimeframeAll {
		query.Set("timeframe", string(filters.Timeframe))
	}
	if filters.Activity != "" && filters.Activity != domain.ActivityFilterAll {
		query.Set("activity", string(filters.Activity))
	}
	if filters.StartDate != nil {
		query.Set("start_date", filters.StartDate.Format(time.DateOnly))
	}
	if filters.EndDate != nil {
		query.Set("end_date", filters.EndDate.Format(time.DateOnly))
	}
	return query
}

func (c *HTTPClient) do(ctx context.Context, method, route string, query url.Values, body any, expected int, out any) error {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, route)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != expected {
		respErr := &ResponseError{StatusCode: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		_ = json.Unmarshal(raw, &respErr.APIError)
		return respErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
