package feed

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/tartampluch/salon-desk/internal/config"
)

// snapshot is one immutable rendering of the feed.
type snapshot struct {
	data []byte
	etag string
}

// Server exposes the rendered calendar on a localhost port. The content
// is read often (calendar clients poll) and replaced rarely (once per
// refresh), so a lock-free atomic pointer holds the current snapshot.
type Server struct {
	current atomic.Pointer[snapshot]
	Port    string
}

// NewServer creates a feed server bound to the given port.
func NewServer(port string) *Server {
	return &Server{Port: port}
}

// Update atomically replaces the served calendar.
func (s *Server) Update(data []byte) {
	hash := sha256.Sum256(data)
	snap := &snapshot{
		data: data,
		etag: fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:])),
	}
	s.current.Store(snap)

	slog.Debug(config.MsgFeedUpdated,
		config.LogKeyComponent, config.CompFeed,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, snap.etag,
	)
}

// Start runs the HTTP server and blocks until the context is cancelled
// or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	if s.Port == "" {
		return fmt.Errorf(config.ErrPortRequired)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.FeedRoute, s.handleFeed)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	failed := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompFeed,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			failed <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompFeed)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-failed:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// handleFeed serves the calendar with ETag-based client caching.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	snap := s.current.Load()
	if snap == nil {
		// First refresh has not completed yet.
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, snap.etag)

	if r.Header.Get(config.HeaderIfNoneMatch) == snap.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(snap.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompFeed,
				config.LogKeyError, err,
			)
		}
	}
}
