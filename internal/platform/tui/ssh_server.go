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

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/dispatch"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

// SSHServerConfig configures the arcade SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the host key file, generated when missing.
	// Defaults to ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the scores database. Empty disables scores.
	DBPath string

	IdleTimeout time.Duration

	// MaxSessions caps concurrent players; 0 means no cap.
	MaxSessions int

	// Arcade is the configuration every session runs with, and Difficulty
	// the label its scores are saved under.
	Arcade     config.Config
	Difficulty config.DifficultyPreset
}

// DefaultSSHServerConfig returns the configuration used by `arcade serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      storage.DefaultPath,
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 16,
		Arcade:      config.EmbeddedConfig(),
	}
}

// SSHServer serves the arcade over SSH. Every session gets its own
// dispatcher and scheduler; only the score store is shared.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer creates a server; it does not listen until ListenAndServe.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-ssh",
		})
	}

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}
	if cfg.DBPath != "" {
		if srv.store, err = storage.Open(cfg.DBPath); err != nil {
			logger.Warn("scores disabled", "error", err)
		}
	}

	// Middlewares run last to first: count, then require a terminal, then play.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler starts a fresh arcade at the menu for one connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	seed := uint64(time.Now().UnixNano())
	logger := s.logger.With("user", sess.User())
	logger.Debug("arcade ready", "seed", seed, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	machine := dispatch.New(s.config.Arcade.Dispatch(), seed, dispatch.WithLogger(logger))
	model := NewModel(machine, Options{
		TickRate:   s.config.Arcade.TickRate,
		DeadZone:   s.config.Arcade.DeadZone,
		Context:    sess.Context(),
		Store:      s.store,
		Difficulty: string(s.config.Difficulty),
		Logger:     logger,
		Width:      pty.Window.Width,
		Height:     pty.Window.Height,
	})

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// sessionMiddleware turns players away above MaxSessions and logs arrivals
// and departures with the number of players connected.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		remote := sess.RemoteAddr().String()
		if limit := s.config.MaxSessions; limit > 0 && int(n) > limit {
			s.logger.Warn("arcade full", "user", sess.User(), "remote", remote, "max", limit)
			wish.Fatalln(sess, "All arcade cabinets are busy, try again later.")
			return
		}

		s.logger.Info("player joined", "user", sess.User(), "remote", remote, "players", n)
		next(sess)
		s.logger.Info("player left", "user", sess.User(), "remote", remote, "players", s.active.Load()-1)
	}
}

// Players returns the number of connected sessions.
func (s *SSHServer) Players() int {
	return int(s.active.Load())
}

// ListenAndServe serves until SIGINT/SIGTERM or a server error.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "max_sessions", s.config.MaxSessions)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errs := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down", "players", s.Players())
	case err := <-errs:
		s.logger.Error("server error", "error", err)
		s.closeStore()
		return err
	}
	return s.Shutdown()
}

// Shutdown stops the server, waiting up to ten seconds for sessions.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
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
