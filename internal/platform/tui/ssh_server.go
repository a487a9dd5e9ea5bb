// Package tui provides the terminal host for the tunnel, including SSH
// server support via Wish.
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

	"github.com/vovakirdan/infinity-spectrum/internal/config"
	"github.com/vovakirdan/infinity-spectrum/internal/core"
	"github.com/vovakirdan/infinity-spectrum/internal/storage"
	"github.com/vovakirdan/infinity-spectrum/internal/tunnel"
)

// DefaultHostKeyPath is where the host key is generated when none is given.
const DefaultHostKeyPath = "~/.spectrum/host_key"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the host key file, generated on first start if missing.
	// Empty means DefaultHostKeyPath.
	HostKeyPath string

	// IdleTimeout closes connections without input for this long.
	IdleTimeout time.Duration

	// TickRate is the frame rate of every hosted session.
	TickRate int

	// MaxSessions caps concurrent players; 0 means unlimited.
	MaxSessions int
}

// DefaultSSHServerConfig returns the settings used by `spectrum serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves one independent tunnel session per SSH connection.
// All sessions share the ledger and the run history.
type SSHServer struct {
	config SSHServerConfig
	tunnel config.TunnelConfig
	ledger tunnel.Ledger
	store  *storage.Store
	server *ssh.Server
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer creates a new SSH server. The ledger must be safe for
// concurrent use; store may be nil.
func NewSSHServer(cfg SSHServerConfig, tunnelCfg config.TunnelConfig, ledger tunnel.Ledger, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "spectrum-ssh",
		})
	}
	if cfg.HostKeyPath == "" {
		cfg.HostKeyPath = DefaultHostKeyPath
	}

	hostKey, err := core.ExpandPath(cfg.HostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("ssh: host key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(hostKey), 0o700); err != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}

	srv := &SSHServer{
		config: cfg,
		tunnel: tunnelCfg,
		ledger: ledger,
		store:  store,
		logger: logger,
	}

	// Middlewares run last to first: log, admit, require a PTY, then play.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKey),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.admitMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates the tunnel host for one connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	model := NewModel(Options{
		Tunnel: s.tunnel,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
		},
		Ledger:   s.ledger,
		Store:    s.store,
		Logger:   s.logger.With("user", sess.User()),
		Renderer: bubbletea.MakeRenderer(sess),
	})

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// admitMiddleware turns connections away once MaxSessions players are in.
func (s *SSHServer) admitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		if s.config.MaxSessions > 0 && n > int64(s.config.MaxSessions) {
			s.logger.Warn("session rejected", "user", sess.User(), "active", n-1)
			wish.Fatalln(sess, "The tunnel is full, try again later.")
			return
		}
		next(sess)
	}
}

// loggingMiddleware logs connection start and end.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("session started", "user", sess.User(), "remote", remote)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", remote,
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...", "active", s.Active())
	return s.Shutdown()
}

// Shutdown stops accepting connections and waits up to 10s for players to leave.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Active returns the number of connected players.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}
