package client

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	mu      sync.Mutex
	calls   int
	result  *PredictResult
	err     error
	release chan struct{}
}

func (s *stubService) Predict(req PredictRequest) (*PredictResult, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.release != nil {
		<-s.release
	}
	return s.result, s.err
}

func (s *stubService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestPredictorSubmitSuccess(t *testing.T) {
	service := &stubService{
		result: &PredictResult{WQI: 42.5, RiskCategory: "Good", Potable: true, SafeForUse: true},
	}
	p := NewPredictor(service)

	assert.Equal(t, StateIdle, p.State(), "wrong initial state")

	result, err := p.Submit(PredictRequest{PH: 7.2})
	assert.Nil(t, err, "wrong Submit")
	assert.Equal(t, StateSuccess, p.State(), "wrong state after success")
	assert.Equal(t, 42.5, result.WQI, "wrong wqi")
	assert.Equal(t, result, p.Result(), "wrong stored result")
	assert.Empty(t, p.ErrMessage(), "unexpected error message")
}

// Even if the server answered with inconsistent flags, a WQI above 100 must
// come out non-potable and unsafe.
func TestPredictorHighWQICorrection(t *testing.T) {
	service := &stubService{
		result: &PredictResult{WQI: 105, RiskCategory: "Very Poor", Potable: true, SafeForUse: true},
	}
	p := NewPredictor(service)

	result, err := p.Submit(PredictRequest{})
	assert.Nil(t, err, "wrong Submit")
	assert.False(t, result.Potable, "wqi above 100 must not be potable")
	assert.False(t, result.SafeForUse, "wqi above 100 must not be safe")
}

func TestPredictorSubmitError(t *testing.T) {
	service := &stubService{err: fmt.Errorf("no response from server")}
	p := NewPredictor(service)

	result, err := p.Submit(PredictRequest{})
	assert.NotNil(t, err, "expected submit error")
	assert.Nil(t, result, "no result expected on error")
	assert.Equal(t, StateError, p.State(), "wrong state after error")
	assert.Equal(t, "no response from server", p.ErrMessage(), "error message must be verbatim")

	// a failed submission must be retryable
	service.err = nil
	service.result = &PredictResult{WQI: 30}
	result, err = p.Submit(PredictRequest{})
	assert.Nil(t, err, "wrong retry Submit")
	assert.Equal(t, StateSuccess, p.State(), "wrong state after retry")
	assert.Equal(t, 30.0, result.WQI, "wrong retried wqi")
}

func TestPredictorSingleInFlight(t *testing.T) {
	service := &stubService{
		result:  &PredictResult{WQI: 10},
		release: make(chan struct{}),
	}
	p := NewPredictor(service)

	done := make(chan struct{})
	go func() {
		_, _ = p.Submit(PredictRequest{})
		close(done)
	}()

	waitForState(t, p, StateSubmitting)

	// a second submit while one is in flight is ignored
	result, err := p.Submit(PredictRequest{})
	assert.Nil(t, err, "wrong concurrent Submit")
	assert.Nil(t, result, "concurrent Submit must not return a result")

	close(service.release)
	<-done

	assert.Equal(t, StateSuccess, p.State(), "wrong final state")
	assert.Equal(t, 1, service.callCount(), "only one request may reach the service")
}

func TestPredictorResetDropsInFlightResult(t *testing.T) {
	service := &stubService{
		result:  &PredictResult{WQI: 10},
		release: make(chan struct{}),
	}
	p := NewPredictor(service)

	done := make(chan struct{})
	go func() {
		result, err := p.Submit(PredictRequest{})
		assert.Nil(t, err, "superseded Submit must not error")
		assert.Nil(t, result, "superseded Submit must not return a result")
		close(done)
	}()

	waitForState(t, p, StateSubmitting)
	p.Reset()
	close(service.release)
	<-done

	assert.Equal(t, StateIdle, p.State(), "reset state must stick")
	assert.Nil(t, p.Result(), "no result expected after reset")
}

func waitForState(t *testing.T, p *Predictor, want PredictState) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if p.State() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("predictor never reached state %s", want)
}
