package client

import (
	"net/http"
	"sync"
	"time"
)

// National centroid used when a caller supplies no coordinates.
const (
	DefaultLatitude  = 20.5937
	DefaultLongitude = 78.9629
)

// PredictRequest carries the 12 chemical parameters plus the implicit
// inference context.
type PredictRequest struct {
	PH  float64 `json:"pH"`
	EC  float64 `json:"EC"`
	TDS float64 `json:"TDS"`
	TH  float64 `json:"TH"`
	Ca  float64 `json:"Ca"`
	Mg  float64 `json:"Mg"`
	Na  float64 `json:"Na"`
	K   float64 `json:"K"`
	Cl  float64 `json:"Cl"`
	SO4 float64 `json:"SO4"`
	NO3 float64 `json:"NO3"`
	F   float64 `json:"F"`

	Year      int     `json:"year"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PredictResult is the quality assessment returned by the inference endpoint.
type PredictResult struct {
	PredictedTDS    float64           `json:"predicted_tds"`
	WQI             float64           `json:"wqi"`
	RiskCategory    string            `json:"risk_category"`
	Potable         bool              `json:"potable"`
	SafeForUse      bool              `json:"safe_for_use"`
	Recommendations []string          `json:"recommendations"`
	ParameterStatus map[string]string `json:"parameter_status"`
}

// Predict submits one set of parameters to the inference endpoint. Year and
// coordinates default to the current year and the national centroid.
func (c *Client) Predict(req PredictRequest) (*PredictResult, error) {
	if req.Year == 0 {
		req.Year = time.Now().Year()
	}
	if req.Latitude == 0 && req.Longitude == 0 {
		req.Latitude = DefaultLatitude
		req.Longitude = DefaultLongitude
	}

	var result PredictResult
	if err := c.do(http.MethodPost, "/api/predict", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PredictService is the inference dependency of a Predictor.
type PredictService interface {
	Predict(req PredictRequest) (*PredictResult, error)
}

// PredictState is the submission phase of a Predictor.
type PredictState string

const (
	StateIdle       PredictState = "idle"
	StateSubmitting PredictState = "submitting"
	StateSuccess    PredictState = "success"
	StateError      PredictState = "error"
)

// Predictor drives the submit/result lifecycle of the prediction form: one
// request in flight at a time, results of superseded submissions dropped.
type Predictor struct {
	mu sync.Mutex

	service PredictService

	state      PredictState
	generation uint64
	result     *PredictResult
	errMessage string
}

// NewPredictor wraps the given inference service.
func NewPredictor(service PredictService) *Predictor {
	return &Predictor{
		service: service,
		state:   StateIdle,
	}
}

// Submit issues one inference request, synchronously. It is a no-op while a
// previous submission is still in flight. After a failure the caller may
// simply submit again.
func (p *Predictor) Submit(req PredictRequest) (*PredictResult, error) {
	p.mu.Lock()
	if p.state == StateSubmitting {
		p.mu.Unlock()
		return nil, nil
	}
	p.state = StateSubmitting
	p.generation++
	generation := p.generation
	p.mu.Unlock()

	result, err := p.service.Predict(req)

	p.mu.Lock()
	defer p.mu.Unlock()

	// a Reset during the request supersedes this submission
	if generation != p.generation {
		return nil, nil
	}

	if err != nil {
		p.state = StateError
		p.result = nil
		p.errMessage = err.Error()
		return nil, err
	}

	// the server already enforces this, guard anyway
	if result.WQI > 100 {
		result.Potable = false
		result.SafeForUse = false
	}

	p.state = StateSuccess
	p.result = result
	p.errMessage = ""
	return result, nil
}

// Reset returns the predictor to idle, discarding any result or error and
// invalidating an in-flight submission.
func (p *Predictor) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = StateIdle
	p.generation++
	p.result = nil
	p.errMessage = ""
}

// State reports the current phase.
func (p *Predictor) State() PredictState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Result returns the last successful assessment, nil otherwise.
func (p *Predictor) Result() *PredictResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// ErrMessage returns the verbatim message of the last failure.
func (p *Predictor) ErrMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMessage
}
