package nhlweb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/providers"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/timeutil"
)

// Config controls how the client reaches the NHL web API.
type Config struct {
	BaseURL    string
	Timezone   string
	UserAgent  string
	HTTPClient *http.Client
}

// Client reads club schedules and play-by-play feeds from api-web.nhle.com.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

// NewClient constructs an NHL web API client.
func NewClient(cfg Config) *Client {
	agent := cfg.UserAgent
	if agent == "" {
		agent = defaultUserAgent
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  agent,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// TodaysGames returns the team's games on the current day in the client's timezone.
// The weekly club schedule is fetched and filtered to that day.
func (c *Client) TodaysGames(ctx context.Context, team string) ([]games.ScheduledGame, error) {
	today := timeutil.LocalDate(c.now(), c.loc)
	path := "/club-schedule/" + team + "/week/" + today

	var payload scheduleResponse
	if err := c.getJSON(ctx, "schedule", team, path, &payload); err != nil {
		return nil, err
	}

	out := make([]games.ScheduledGame, 0, len(payload.Games))
	for _, g := range payload.Games {
		if g.GameDate != today {
			continue
		}
		out = append(out, mapScheduledGame(g))
	}
	return out, nil
}

// GameFeed returns the play-by-play snapshot for gameID, reduced to goals.
func (c *Client) GameFeed(ctx context.Context, gameID int64) (games.Feed, error) {
	id := strconv.FormatInt(gameID, 10)
	var payload playByPlayResponse
	if err := c.getJSON(ctx, "feed", id, "/gamecenter/"+id+"/play-by-play", &payload); err != nil {
		return games.Feed{}, err
	}
	return mapFeed(gameID, payload), nil
}

// Ping checks the league-wide schedule endpoint.
func (c *Client) Ping(ctx context.Context) error {
	var payload json.RawMessage
	return c.getJSON(ctx, "ping", "schedule/now", "/schedule/now", &payload)
}

func (c *Client) getJSON(ctx context.Context, op, target, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrapf(err, "nhlweb: build %s request", op)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.FetchError{Op: op, Target: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    "nhlweb: rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.FetchError{
			Op:         op,
			Target:     target,
			StatusCode: resp.StatusCode,
			Err:        errors.Newf("unexpected response: %s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &providers.FetchError{Op: op, Target: target, Err: errors.Wrap(err, "decode")}
	}
	return nil
}
