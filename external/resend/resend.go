package resend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	defaultURL    = "https://api.resend.com/emails"
	defaultSender = "Groundwater Watch <alerts@resend.dev>"
)

var (
	errEmptyAPIKey  = fmt.Errorf("empty api key")
	errResponseCode = fmt.Errorf("unexpected response status")
)

// Mailer sends groundwater quality alert emails.
type Mailer interface {
	SendAlert(toEmail, location string, wqiValue float64) error
}

type client struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

type emailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendAlert posts one alert email through the Resend API.
func (c *client) SendAlert(toEmail, location string, wqiValue float64) error {
	if c.apiKey == "" {
		return errEmptyAPIKey
	}

	body := emailRequest{
		From:    defaultSender,
		To:      toEmail,
		Subject: fmt.Sprintf("Critical Alert: %s Water Quality", location),
		HTML: fmt.Sprintf(
			"<h1>Groundwater Quality Alert</h1>"+
				"<p>This is an automated alert for <strong>%s</strong>.</p>"+
				"<p>The latest Water Quality Index (WQI) reported is: <strong>%.2f</strong>.</p>"+
				"<p>This level requires attention. You are receiving this because you "+
				"subscribed to alerts for %s.</p>",
			location, wqiValue, location),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if nil != err {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %d", errResponseCode, resp.StatusCode)
	}
	return nil
}

// New creates a Resend mail client. An empty url selects the production
// endpoint.
func New(apiKey, url string, httpClient *http.Client) Mailer {
	u := defaultURL
	if url != "" {
		u = url
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		apiKey:     apiKey,
		url:        u,
		httpClient: httpClient,
	}
}
