package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/fuelrun/internal/config"
	"github.com/tomz197/fuelrun/internal/draw"
	"github.com/tomz197/fuelrun/internal/loop"
	"github.com/tomz197/fuelrun/internal/spectate"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultWebHost     = "0.0.0.0"
	defaultWebPort     = "8080"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "fuelrun"})
	if err := run(logger); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

func run(logger *log.Logger) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	if lvl, err := log.ParseLevel(config.GetEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(lvl)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	webAddr := net.JoinHostPort(config.GetEnv("WEB_HOST", defaultWebHost), config.GetEnv("WEB_PORT", defaultWebPort))
	sshDisplayHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	tuning := config.Default()
	if path := config.GetEnv("FUELRUN_TUNING", ""); path != "" {
		var err error
		if tuning, err = config.LoadTuning(path); err != nil {
			return err
		}
		logger.Info("loaded tuning", "path", path)
	}

	hub := loop.NewHub(logger.WithPrefix("hub"))

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(hub, tuning, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger.WithPrefix("ssh")),
		),
		// TCP_NODELAY keeps input latency low.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	sshServer, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create ssh server: %w", err)
	}
	feed := spectate.New(hub, spectate.Options{
		SSHHost: sshDisplayHost,
		Logger:  logger.WithPrefix("web"),
	})
	webServer := spectate.NewServer(webAddr, feed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting ssh server", "addr", sshServer.Addr)
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("starting web server", "addr", webAddr)
		if err := webServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down, notifying players", "sessions", hub.Count())
		hub.Shutdown(15 * time.Second)

		// Shutdown does not wait for hijacked websocket connections.
		feed.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return errors.Join(
			sshServer.Shutdown(shutdownCtx),
			webServer.Shutdown(shutdownCtx),
		)
	})
	return g.Wait()
}

// gameMiddleware runs one client per SSH session.
func gameMiddleware(hub *loop.Hub, tuning config.Tuning, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}
			logger.Info("new game session", "user", sess.User(), "term", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			size := draw.NewWindowSize(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					size.Update(win.Width, win.Height)
				}
			}()

			err := loop.Run(bufio.NewReader(sess), sess, loop.Options{
				TermSizeFunc: size.Size,
				Username:     sess.User(),
				Hub:          hub,
				Tuning:       tuning,
				Logger:       logger.WithPrefix("game"),
			})
			if err != nil {
				logger.Error("game error", "user", sess.User(), "err", err)
			}
			logger.Info("session ended", "user", sess.User())
			next(sess)
		}
	}
}
