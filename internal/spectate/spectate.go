// Package spectate serves the web landing page and a live websocket feed
// of the sessions running on the server.
package spectate

import (
	_ "embed"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/tomz197/fuelrun/internal/config"
	"github.com/tomz197/fuelrun/internal/loop"
)

//go:embed index.html
var htmlPage string

// Source provides the reports pushed to spectators. *loop.Hub satisfies it.
type Source interface {
	Snapshot() []loop.Report
}

// Feed is one websocket message.
type Feed struct {
	Time     time.Time     `json:"time"`
	Sessions []loop.Report `json:"sessions"`
}

// Options configures a Handler.
type Options struct {
	SSHHost  string        // shown in the connect instructions
	Interval time.Duration // between feed messages; defaults to config.FeedInterval
	Logger   *log.Logger
}

// Handler serves "/" and "/ws".
type Handler struct {
	src      Source
	page     string
	interval time.Duration
	logger   *log.Logger
	mux      *http.ServeMux

	done      chan struct{}
	closeOnce sync.Once
}

// New creates the spectator handler.
func New(src Source, opts Options) *Handler {
	if opts.Interval <= 0 {
		opts.Interval = config.FeedInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	h := &Handler{
		src:      src,
		page:     strings.ReplaceAll(htmlPage, "{{.SSHHost}}", opts.SSHHost),
		interval: opts.Interval,
		logger:   opts.Logger,
		mux:      http.NewServeMux(),
		done:     make(chan struct{}),
	}
	h.mux.HandleFunc("GET /{$}", h.serveIndex)
	h.mux.HandleFunc("GET /ws", h.serveFeed)
	return h
}

// Close ends every live feed with a going-away close frame and refuses
// new ones. http.Server.Shutdown does not reach hijacked connections, so
// call Close first.
func (h *Handler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(h.page))
}

// serveFeed pushes a snapshot every interval until the spectator leaves.
func (h *Handler) serveFeed(w http.ResponseWriter, r *http.Request) {
	select {
	case <-h.done:
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	default:
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Error("failed to accept spectator", "err", err)
		return
	}
	defer conn.CloseNow()

	// Spectators never send; CloseRead handles their close frame.
	ctx := conn.CloseRead(r.Context())
	h.logger.Debug("spectator joined", "remote", r.RemoteAddr)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		msg := Feed{Time: time.Now().UTC(), Sessions: h.src.Snapshot()}
		if err := wsjson.Write(ctx, conn, msg); err != nil {
			h.logger.Debug("spectator left", "remote", r.RemoteAddr, "err", err)
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case <-ticker.C:
		}
	}
}

// NewServer wraps h in an HTTP server listening on addr.
func NewServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
