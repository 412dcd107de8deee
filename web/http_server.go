package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/henriqueacribeiro/invenhelper/controllers"
)

type httpServer struct {
	Logger zerolog.Logger
	Router *gin.Engine
	srv    http.Server
}

func New(logger zerolog.Logger, port int,
	ctrl ...controllers.Controller) (HttpServer, error) {

	serverLogger := logger.With().Str("Server", "HTTP").Logger()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(serverLogger))

	for i := 0; i < len(ctrl); i++ {
		ctrl[i].Register(r)
	}

	return &httpServer{
		Router: r,
		Logger: serverLogger,
		srv: http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		},
	}, nil
}

type HttpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

func (h *httpServer) ListenAndServe() error {
	return h.srv.ListenAndServe()
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	}
}
