package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/meetup-client/internal/adapter/api"
	"github.com/heartmarshall/meetup-client/internal/adapter/push"
	"github.com/heartmarshall/meetup-client/internal/auth"
	"github.com/heartmarshall/meetup-client/internal/config"
	"github.com/heartmarshall/meetup-client/internal/metrics"
	"github.com/heartmarshall/meetup-client/internal/notice"
	"github.com/heartmarshall/meetup-client/internal/poll"
	"github.com/heartmarshall/meetup-client/internal/service/chat"
	"github.com/heartmarshall/meetup-client/internal/service/notification"
	"github.com/heartmarshall/meetup-client/internal/service/participant"
)

// App holds the process-wide collaborators shared by every view.
type App struct {
	Config  *config.Config
	Log     *slog.Logger
	Session *auth.Session
	Metrics *metrics.Metrics
	API     *api.Client
	Board   *notice.Board
	// Push is nil when no push URL is configured.
	Push *push.Subscriber

	confirm participant.Confirmer
}

// Option customizes an App.
type Option func(*App)

// WithConfirmer sets the prompt used before destructive participant actions.
func WithConfirmer(c participant.Confirmer) Option {
	return func(a *App) { a.confirm = c }
}

// WithMetricsAddr overrides the configured metrics listener address.
// An empty addr keeps the configured one.
func WithMetricsAddr(addr string) Option {
	return func(a *App) {
		if addr != "" {
			a.Config.Metrics.Addr = addr
		}
	}
}

// New wires an App from cfg. Nothing is started until Start.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	sess, err := auth.NewSession(cfg.Session.Token, cfg.Session.UserID)
	if err != nil {
		return nil, fmt.Errorf("app: session: %w", err)
	}

	m := metrics.New()

	a := &App{
		Config:  cfg,
		Log:     logger,
		Session: sess,
		Metrics: m,
		API: api.NewClient(api.Options{
			BaseURL:   cfg.API.BaseURL,
			Timeout:   cfg.API.Timeout,
			RPS:       cfg.API.RateLimitRPS,
			Burst:     cfg.API.RateLimitBurst,
			UserAgent: UserAgent(),
		}, sess, m, logger),
		Board: notice.NewBoard(cfg.Notice.TTL, m, logger),
	}
	if cfg.Push.PushEnabled() {
		a.Push = push.NewSubscriber(cfg.Push.URL, cfg.Push.ReconnectDelay, sess, logger)
	}
	for _, opt := range opts {
		opt(a)
	}

	logger.Info("client configured",
		slog.String("version", BuildVersion()),
		slog.String("api", cfg.API.BaseURL),
		slog.Bool("authenticated", sess.Authenticated()),
		slog.Bool("push", a.Push != nil),
		slog.Bool("metrics", cfg.Metrics.MetricsEnabled()),
	)
	return a, nil
}

// Load reads configuration from path (see config.LoadFrom), builds the
// logger and wires the App. verbose forces debug logging.
func Load(path string, verbose bool, opts ...Option) (*App, error) {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return New(cfg, NewLogger(cfg.Log), opts...)
}

// Start launches the metrics listener and the push subscriber when they are
// configured. Both stop when ctx is cancelled.
func (a *App) Start(ctx context.Context) {
	if a.Config.Metrics.MetricsEnabled() {
		go func() {
			if err := a.Metrics.Serve(ctx, a.Config.Metrics.Addr, a.Log); err != nil {
				a.Log.Error("metrics listener failed", slog.String("error", err.Error()))
			}
		}()
	}
	if a.Push != nil {
		go func() {
			_ = a.Push.Run(ctx)
		}()
	}
}

// Close drops pending notices.
func (a *App) Close() {
	a.Board.Close()
}

func (a *App) pollOptions(topic string) []poll.Option {
	if a.Push == nil {
		return nil
	}
	return []poll.Option{poll.WithNudgeSource(func() (<-chan struct{}, func()) {
		return a.Push.Nudges(topic)
	})}
}

// ChatView builds a chat view.
func (a *App) ChatView() *chat.View {
	return chat.NewView(a.Log, a.API, a.Session, a.Board, a.Metrics, chat.Options{
		Interval: a.Config.Chat.PollInterval,
		Poll:     a.pollOptions(push.TopicChat),
	})
}

// NotificationView builds a notification view.
func (a *App) NotificationView() *notification.View {
	return notification.NewView(a.Log, a.API, a.API, a.Board, a.Metrics, notification.Options{
		Interval:          a.Config.Notification.PollInterval,
		LookupConcurrency: a.Config.Notification.LookupConcurrency,
		Poll:              a.pollOptions(push.TopicNotification),
	})
}

// ParticipantService builds the participant workflow service.
func (a *App) ParticipantService() *participant.Service {
	return participant.NewService(a.Log, a.API, a.Session, a.confirm, a.Metrics, a.Config.Participant.BulkConcurrency)
}

// ParticipantView builds a participant management view.
func (a *App) ParticipantView() *participant.View {
	return participant.NewView(a.Log, a.ParticipantService(), a.Board, a.Metrics, participant.Options{
		Interval: a.Config.Participant.PollInterval,
		Poll:     a.pollOptions(push.TopicParticipant),
	})
}
