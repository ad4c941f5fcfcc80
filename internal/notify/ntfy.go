package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/logging"
)

// Config controls how the ntfy client reaches the push server.
type Config struct {
	BaseURL    string
	Token      string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client publishes JSON messages to an ntfy server.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs an ntfy client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// BaseURL reports the server this client publishes to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type publishRequest struct {
	Topic    string   `json:"topic"`
	Title    string   `json:"title,omitempty"`
	Message  string   `json:"message"`
	Priority int      `json:"priority,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Attach   string   `json:"attach,omitempty"`
	Icon     string   `json:"icon,omitempty"`
}

// Send publishes n to topic. Any non-2xx answer is a *DeliveryError.
func (c *Client) Send(ctx context.Context, topic string, n Notification) error {
	body, err := json.Marshal(publishRequest{
		Topic:    topic,
		Title:    n.Title,
		Message:  n.Message,
		Priority: n.Priority,
		Tags:     n.Tags,
		Attach:   n.ImageURL,
		Icon:     n.IconURL,
	})
	if err != nil {
		return errors.Wrap(err, "encode ntfy message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build ntfy request")
	}
	req.Header.Set("Content-Type", "application/json")
	c.decorate(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &DeliveryError{Topic: topic, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &DeliveryError{Topic: topic, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	logging.Debug(c.logger, "ntfy message published", logging.FieldTopic, topic)
	return nil
}

type healthResponse struct {
	Healthy bool `json:"healthy"`
}

// Health calls the server's /v1/health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/health", nil)
	if err != nil {
		return errors.Wrap(err, "build ntfy health request")
	}
	c.decorate(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "ntfy health")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf("ntfy health: unexpected status %d", resp.StatusCode)
	}
	var payload healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "decode ntfy health")
	}
	if !payload.Healthy {
		return errors.New("ntfy reports unhealthy")
	}
	return nil
}

func (c *Client) decorate(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}
