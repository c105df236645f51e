package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/finca/internal/config"
	"github.com/mamadbah2/finca/internal/domain/models"
)

// Client posts dashboard digests to a notification endpoint.
type Client interface {
	SendDigest(ctx context.Context, digest models.DashboardDigest) error
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client using the provided configuration values.
func NewClient(cfg config.WebhookConfig) *APIClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	if cfg.Token != "" {
		restyClient.SetAuthToken(cfg.Token)
	}

	return &APIClient{
		httpClient: restyClient,
		url:        cfg.URL,
	}
}

// apiError represents an error payload returned by the endpoint.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// payload is the JSON body sent for one digest.
type payload struct {
	Event  string                 `json:"event"`
	Text   string                 `json:"text"`
	Digest models.DashboardDigest `json:"digest"`
}

// Name identifies the sink in logs.
func (c *APIClient) Name() string { return "webhook" }

// PublishDigest sends digest; it lets the client act as a digest sink.
func (c *APIClient) PublishDigest(ctx context.Context, digest models.DashboardDigest) error {
	return c.SendDigest(ctx, digest)
}

// SendDigest posts the digest with its text summary.
func (c *APIClient) SendDigest(ctx context.Context, digest models.DashboardDigest) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload{Event: "dashboard.digest", Text: digest.Summary, Digest: digest}).
		SetError(apiErr).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send digest webhook: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error
		}
		return fmt.Errorf("digest webhook error: code=%d, message=%s", resp.StatusCode(), message)
	}

	return nil
}
