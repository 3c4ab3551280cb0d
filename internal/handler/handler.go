package handler

import (
	"context"
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mock/handler_mock.go -package=mock_handler

//go:embed templates/*.tmpl
var templatesFS embed.FS

type LeaderboardSI interface {
	LeaderboardHTML(ctx context.Context) (string, error)
}

type Handler struct {
	leaderboard LeaderboardSI
	timeout     time.Duration
	log         *zap.Logger
}

func NewHandler(leaderboard LeaderboardSI, timeout time.Duration, log *zap.Logger) *Handler {
	return &Handler{
		leaderboard: leaderboard,
		timeout:     timeout,
		log:         log,
	}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *Handler, env string) *gin.Engine {
	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.log))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	SetupRoutes(r, h)

	return r
}

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/healthz", h.Health)
	r.GET("/leaderboard", h.LeaderboardPage)
	r.GET("/leaderboard/fragment", h.LeaderboardFragment)
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
