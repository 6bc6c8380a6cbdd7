package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui2048/internal/config"
	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/storage"
)

// sessionIDKey is the ssh.Context key holding the per-connection session ID.
type sessionIDKey struct{}

// shutdownTimeout bounds how long Serve waits for open sessions on exit.
const shutdownTimeout = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tui2048/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int

	// MaxSessions caps concurrent sessions. 0 means no limit.
	MaxSessions int

	// KeyBindings are applied to every session's game keys.
	KeyBindings map[string]core.Action

	// Logger receives server and session events. Nil creates a default logger.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/" + config.AppDir + "/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves 2048 over SSH. Every session plays its own private game;
// all sessions share one scores database.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tui2048-ssh",
		})
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		// Sessions still work, scores are just not kept
		logger.Warn("could not open scores database", "path", cfg.DBPath, "error", err)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Middlewares run last to first: log, limit, require a PTY, then play.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.limitMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath defaults the key to ~/.tui2048/host_key and makes sure
// its directory exists. Wish generates the key on first start.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, config.AppDir, "host_key")
	} else {
		expanded, err := config.ExpandHome(path)
		if err != nil {
			return "", err
		}
		path = expanded
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:     pty.Window.Width,
		ScreenH:     pty.Window.Height,
		TickRate:    s.config.TickRate,
		Seed:        time.Now().UnixNano(),
		KeyBindings: s.config.KeyBindings,
	}

	sessionID, _ := sshSession.Context().Value(sessionIDKey{}).(string)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	model := NewSessionModel(s.store, cfg, sshSession.User(), sessionID)
	model.logger = s.logger
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// limitMiddleware turns sessions away once MaxSessions are open.
func (s *SSHServer) limitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		if s.config.MaxSessions > 0 && int(n) > s.config.MaxSessions {
			s.logger.Warn("session rejected, server full", "user", sshSession.User(), "open", n-1)
			wish.Fatalln(sshSession, "Server is full, try again later.")
			return
		}
		next(sshSession)
	}
}

// loggingMiddleware tags each session with an ID and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		sessionID := uuid.NewString()
		sshSession.Context().SetValue(sessionIDKey{}, sessionID)

		start := time.Now()
		s.logger.Info("session started",
			"session", sessionID,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"session", sessionID,
			"user", sshSession.User(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ActiveSessions returns the number of sessions currently open.
func (s *SSHServer) ActiveSessions() int {
	return int(s.active.Load())
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve accepts sessions until ctx is done or the listener fails.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "max_sessions", s.config.MaxSessions)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down...", "open_sessions", s.ActiveSessions())
		return s.Shutdown()
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
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
