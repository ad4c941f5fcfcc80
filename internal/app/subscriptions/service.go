package subscriptions

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	domainsubs "github.com/preston-bernstein/nhl-goal-notifier/internal/domain/subscriptions"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/teams"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/logging"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/notify"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/store"
)

const (
	teamTag           = "nhlteam"
	defaultLogoBase   = "https://assets.nhle.com/logos/nhl/svg"
	fallbackTeamName  = "NHL"
	fallbackTeamAbbr  = "NHL"
	msgSubscribeBlank = "ntfyTopic and teamAbbrev required"
	msgTestBlank      = "ntfyTopic required"
	msgInvalidTeam    = "Invalid team"
)

// Store persists subscriptions.
type Store interface {
	Add(ctx context.Context, sub domainsubs.Subscription) error
	Remove(ctx context.Context, id string) (domainsubs.Subscription, error)
	List() []domainsubs.Subscription
	ListByTopic(topic string) []domainsubs.Subscription
}

// CatchUpNotifier is told about every new subscription.
type CatchUpNotifier interface {
	NotifyNewSubscription(team string)
}

// SubscribeRequest is the body of a subscribe call.
type SubscribeRequest struct {
	Topic      string `json:"ntfyTopic" validate:"required"`
	TeamAbbrev string `json:"teamAbbrev" validate:"required,nhlteam"`
}

// TestRequest is the body of a test notification call.
type TestRequest struct {
	Topic      string `json:"ntfyTopic" validate:"required"`
	TeamAbbrev string `json:"teamAbbrev"`
}

// View is a subscription with its team metadata attached.
type View struct {
	domainsubs.Subscription
	Team *teams.Team `json:"team,omitempty"`
}

func newView(sub domainsubs.Subscription) View {
	v := View{Subscription: sub}
	if team, ok := teams.ByAbbrev(sub.TeamAbbrev); ok {
		v.Team = &team
	}
	return v
}

// Service coordinates subscription changes, catch-up and test notifications.
type Service struct {
	store    Store
	sender   notify.Sender
	catchUp  CatchUpNotifier
	logger   *slog.Logger
	validate *validator.Validate

	logoBaseURL string
	now         func() time.Time
	newID       func() string
}

// Option customises a Service.
type Option func(*Service)

// WithLogoBaseURL sets where team logos are served from.
func WithLogoBaseURL(base string) Option {
	return func(s *Service) {
		if base != "" {
			s.logoBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithCatchUp registers the component told about new subscriptions.
func WithCatchUp(n CatchUpNotifier) Option {
	return func(s *Service) { s.catchUp = n }
}

// NewService constructs a Service backed by store.
func NewService(store Store, sender notify.Sender, logger *slog.Logger, opts ...Option) *Service {
	v := validator.New()
	_ = v.RegisterValidation(teamTag, func(fl validator.FieldLevel) bool {
		return teams.Exists(fl.Field().String())
	})

	s := &Service{
		store:       store,
		sender:      sender,
		logger:      logger,
		validate:    v,
		logoBaseURL: defaultLogoBase,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Teams returns the full team directory.
func (s *Service) Teams() []teams.Team {
	return teams.All()
}

// List returns subscriptions, filtered to topic when it is non-empty.
func (s *Service) List(topic string) []View {
	var subs []domainsubs.Subscription
	if topic == "" {
		subs = s.store.List()
	} else {
		subs = s.store.ListByTopic(topic)
	}
	out := make([]View, 0, len(subs))
	for _, sub := range subs {
		out = append(out, newView(sub))
	}
	return out
}

// Subscribe validates req, stores the subscription and starts a catch-up for its team.
func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) (View, error) {
	req.TeamAbbrev = teams.Normalize(req.TeamAbbrev)
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return View{}, subscribeValidationError(err)
	}

	topic := domainsubs.SanitizeTopic(req.Topic)
	if len(topic) < domainsubs.MinTopicLength {
		return View{}, invalid("Topic must be 3+ characters")
	}
	if len(topic) > domainsubs.MaxTopicLength {
		return View{}, invalid("Topic must be at most 64 characters")
	}

	sub := domainsubs.Subscription{
		ID:         s.newID(),
		Topic:      topic,
		TeamAbbrev: req.TeamAbbrev,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.Add(ctx, sub); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return View{}, ErrAlreadySubscribed
		}
		return View{}, errors.Wrap(err, "save subscription")
	}
	logging.Info(s.logger, "subscription added", logging.FieldTopic, sub.Topic, logging.FieldTeam, sub.TeamAbbrev)

	if s.catchUp != nil {
		s.catchUp.NotifyNewSubscription(sub.TeamAbbrev)
	}
	return newView(sub), nil
}

// Unsubscribe removes the subscription with id.
func (s *Service) Unsubscribe(ctx context.Context, id string) error {
	removed, err := s.store.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return errors.Wrap(err, "remove subscription")
	}
	logging.Info(s.logger, "subscription removed", "id", id, logging.FieldTopic, removed.Topic, logging.FieldTeam, removed.TeamAbbrev)
	return nil
}

// SendTest sends a low-priority notification confirming delivery works.
func (s *Service) SendTest(ctx context.Context, req TestRequest) error {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return invalid(msgTestBlank)
	}

	name, abbrev := fallbackTeamName, fallbackTeamAbbr
	if team, ok := teams.ByAbbrev(teams.Normalize(req.TeamAbbrev)); ok {
		name, abbrev = team.Name, team.Abbreviation
	}
	topic := strings.TrimSpace(req.Topic)

	n := notify.Notification{
		Title:    "🧪 Test: " + name + " Goal Alerts",
		Message:  "Notifications are working!\nYou'll be notified when " + name + " scores.",
		IconURL:  s.logoBaseURL + "/" + abbrev + "_dark.svg",
		Priority: notify.PriorityDefault,
	}
	if err := s.sender.Send(ctx, topic, n); err != nil {
		logging.Error(s.logger, "test notification failed", err, logging.FieldTopic, topic)
		return errors.Wrap(err, "send test notification")
	}
	logging.Info(s.logger, "test notification sent", logging.FieldTopic, topic, logging.FieldTeam, abbrev)
	return nil
}

func subscribeValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return invalid(err.Error())
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return invalid(msgSubscribeBlank)
		}
	}
	return invalid(msgInvalidTeam)
}
