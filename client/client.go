package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/openaquifer/groundwater-api/schema"
)

// APIError carries the coded error body of a failed request. The message is
// surfaced verbatim to the caller.
type APIError struct {
	StatusCode int
	Code       int64  `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client is a thin typed consumer of the dashboard API.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates an API client for the given endpoint.
func New(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

func (c *Client) do(method, path string, query url.Values, body, out interface{}) error {
	u := c.endpoint + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if nil != err {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Stats fetches the national roll-up.
func (c *Client) Stats() (*schema.Stats, error) {
	var stats schema.Stats
	if err := c.do(http.MethodGet, "/api/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Districts fetches the ranked district aggregates.
func (c *Client) Districts(limit int, sortBy string) ([]schema.DistrictAggregate, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if sortBy != "" {
		query.Set("sort_by", sortBy)
	}

	var aggregates []schema.DistrictAggregate
	if err := c.do(http.MethodGet, "/api/districts", query, nil, &aggregates); err != nil {
		return nil, err
	}
	return aggregates, nil
}

// Temporal fetches the yearly national averages.
func (c *Client) Temporal() ([]schema.TemporalTrendPoint, error) {
	var trends []schema.TemporalTrendPoint
	if err := c.do(http.MethodGet, "/api/temporal", nil, nil, &trends); err != nil {
		return nil, err
	}
	return trends, nil
}

// MapData fetches the district map points, optionally for one year.
func (c *Client) MapData(year *int) ([]schema.MapPoint, error) {
	query := url.Values{}
	if year != nil {
		query.Set("year", strconv.Itoa(*year))
	}

	var points []schema.MapPoint
	if err := c.do(http.MethodGet, "/api/map-data-raw", query, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// AvailableYears fetches the years the dataset covers.
func (c *Client) AvailableYears() ([]int, error) {
	var resp struct {
		Years []int `json:"years"`
	}
	if err := c.do(http.MethodGet, "/api/available-years", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Years, nil
}

// SamplePage is one page of raw sample rows.
type SamplePage struct {
	Data         []schema.WaterSample `json:"data"`
	TotalRecords int64                `json:"total_records"`
	Offset       int64                `json:"offset"`
	Limit        int64                `json:"limit"`
	HasMore      bool                 `json:"has_more"`
}

// DistrictDataQuery filters the raw sample listing. Zero values mean no
// filter.
type DistrictDataQuery struct {
	Year     int
	State    string
	District string
}

// DistrictData fetches one page of raw sample rows.
func (c *Client) DistrictData(q DistrictDataQuery, offset, limit int64) (*SamplePage, error) {
	query := url.Values{}
	if q.Year != 0 {
		query.Set("year", strconv.Itoa(q.Year))
	}
	if q.State != "" {
		query.Set("state", q.State)
	}
	if q.District != "" {
		query.Set("district", q.District)
	}
	query.Set("offset", strconv.FormatInt(offset, 10))
	query.Set("limit", strconv.FormatInt(limit, 10))

	var page SamplePage
	if err := c.do(http.MethodGet, "/api/district-data", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DistrictForecast fetches a district's projected points.
func (c *Client) DistrictForecast(district string) ([]schema.ForecastPoint, error) {
	var resp struct {
		ForecastData []schema.ForecastPoint `json:"forecast_data"`
	}
	if err := c.do(http.MethodGet, "/api/forecast/"+url.PathEscape(district), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ForecastData, nil
}

// ValidationPage is one page of forecast validation rows.
type ValidationPage struct {
	Data         []schema.ValidationRecord `json:"data"`
	Parameters   []string                  `json:"parameters"`
	TotalRecords int64                     `json:"total_records"`
	HasMore      bool                      `json:"has_more"`
}

// ForecastValidation fetches one page of validation rows for a parameter.
func (c *Client) ForecastValidation(parameter string, offset, limit int64) (*ValidationPage, error) {
	query := url.Values{}
	if parameter != "" {
		query.Set("parameter", parameter)
	}
	query.Set("offset", strconv.FormatInt(offset, 10))
	query.Set("limit", strconv.FormatInt(limit, 10))

	var page ValidationPage
	if err := c.do(http.MethodGet, "/api/forecast", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Subscribe registers an email for alerts on a district or state.
func (c *Client) Subscribe(email, location, subscriptionType string) error {
	body := map[string]string{
		"email":    email,
		"location": location,
		"type":     subscriptionType,
	}
	return c.do(http.MethodPost, "/api/subscribe", nil, body, nil)
}
