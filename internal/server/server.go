// Package server exposes the engine over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"SignalSentinel/internal/collector"
	"SignalSentinel/internal/model"
	"SignalSentinel/internal/pipeline"
	"SignalSentinel/internal/render"
)

// Handler serves reports computed from Source on every request.
type Handler struct {
	Source  collector.Source
	Toggles model.DisplayToggles
}

// NewRouter wires the routes onto a gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.GET("/health", h.Health)
	api := r.Group("/api")
	api.GET("/report", h.GetReport)
	api.GET("/snapshot", h.GetSnapshot)
	return r
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "source": h.Source.Name()})
}

// GetReport runs the pipeline and returns the narrative and chart payload.
// Query parameters sma, ema, rsi and volume override the default toggles.
func (h *Handler) GetReport(c *gin.Context) {
	toggles, err := h.toggles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, ok := h.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, render.NewReport(res, toggles))
}

// GetSnapshot returns only the classified regimes.
func (h *Handler) GetSnapshot(c *gin.Context) {
	res, ok := h.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, render.NewSnapshot(res))
}

func (h *Handler) run(c *gin.Context) (*pipeline.Result, bool) {
	res, err := pipeline.Run(c.Request.Context(), h.Source)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return res, true
}

func (h *Handler) toggles(c *gin.Context) (model.DisplayToggles, error) {
	t := h.Toggles
	params := []struct {
		key string
		dst *bool
	}{
		{"sma", &t.MovingAverages},
		{"ema", &t.EMA},
		{"rsi", &t.Momentum},
		{"volume", &t.Volume},
	}
	for _, p := range params {
		v, ok := c.GetQuery(p.key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return t, errors.New("invalid value for " + p.key + ": " + v)
		}
		*p.dst = b
	}
	return t, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Serve runs the HTTP server until ctx is cancelled.
func Serve(ctx context.Context, addr string, h *Handler) error {
	srv := &http.Server{Addr: addr, Handler: NewRouter(h), ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info().Msg("http server shutting down")
	return srv.Shutdown(shutdownCtx)
}
