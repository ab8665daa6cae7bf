package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/catch-the-fish/internal/core"
	"github.com/vovakirdan/catch-the-fish/internal/storage"
	"github.com/vovakirdan/catch-the-fish/internal/telemetry"
)

// shutdownGrace bounds how long Serve waits for open sessions on exit.
const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address string // host:port, e.g. ":23234"

	// HostKeyPath is the host key file. Empty means ~/.catchfish/host_key,
	// generated on first start.
	HostKeyPath string

	DBPath      string
	IdleTimeout time.Duration
	TickRate    int // Simulation rate of every session
}

// DefaultSSHServerConfig returns the settings used by "catchfish serve".
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.catchfish/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer hosts one Catch the Fish session per SSH connection.
// All sessions share the score store and the telemetry publisher.
type SSHServer struct {
	config    SSHServerConfig
	server    *ssh.Server
	store     *storage.Store
	publisher telemetry.Publisher
	logger    *log.Logger
	active    atomic.Int32
}

// NewSSHServer creates an SSH server. A nil logger logs to stderr and a nil
// publisher disables telemetry. The server still starts when the score
// database cannot be opened; rounds are then not recorded.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger, publisher telemetry.Publisher) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "catchfish-ssh"})
	}
	if publisher == nil {
		publisher = telemetry.Nop{}
	}

	hostKey, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "db", cfg.DBPath, "error", err)
		store = nil
	}

	s := &SSHServer{
		config:    cfg,
		store:     store,
		publisher: publisher,
		logger:    logger,
	}

	// Middlewares run last to first: sessions are logged, then rejected
	// without a terminal, then handed to Bubble Tea.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKey),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.trackSessions,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the host key location and makes sure its
// directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".catchfish", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the menu-driven model of one connection.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	player := playerName(sess.User())

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	model := NewSessionModel(cfg, Options{
		Store:     s.store,
		Publisher: s.publisher,
		Logger:    s.logger.With("player", player),
		Player:    player,
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func playerName(user string) string {
	if user == "" {
		return "guest"
	}
	return user
}

// trackSessions logs every connection with the number of players online.
func (s *SSHServer) trackSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		online := s.active.Add(1)
		s.logger.Info("player joined", "player", playerName(sess.User()), "remote", sess.RemoteAddr(), "online", online)

		defer func() {
			online := s.active.Add(-1)
			s.logger.Info("player left",
				"player", playerName(sess.User()),
				"played", time.Since(start).Round(time.Second),
				"online", online,
			)
		}()
		next(sess)
	}
}

// Serve accepts connections until ctx is done, then shuts down.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "online", s.active.Load())
	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for open sessions.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
