package server

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiscope/config"
	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/spacesedan/sentiscope/internal/monitoring"
)

// Fallbacks for a zero Config.
const (
	DEFAULT_READ_TIMEOUT  = 15 * time.Second
	DEFAULT_WRITE_TIMEOUT = 30 * time.Second
	DEFAULT_IDLE_TIMEOUT  = 60 * time.Second
)

const INDEX_TEMPLATE = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"labelClass": labelClass,
}

// New returns an http.Server that is configured but not yet listening.
func New(cfg config.Config, handler *Handler, metrics *monitoring.Metrics) *http.Server {
	return &http.Server{
		Addr:         cfg.Address(),
		Handler:      NewRouter(handler, metrics),
		ReadTimeout:  durationOr(cfg.ReadTimeout, DEFAULT_READ_TIMEOUT),
		WriteTimeout: durationOr(cfg.WriteTimeout, DEFAULT_WRITE_TIMEOUT),
		IdleTimeout:  durationOr(cfg.IdleTimeout, DEFAULT_IDLE_TIMEOUT),
	}
}

func NewRouter(handler *Handler, metrics *monitoring.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), ObserveRequests(metrics), gin.Recovery())

	tmpl := template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	SetupRoutes(router, handler, metrics)
	return router
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

func labelClass(label models.Label) string {
	switch label {
	case models.LabelStrongPositive, models.LabelPositive:
		return "bg-success"
	case models.LabelStrongNegative, models.LabelNegative:
		return "bg-danger"
	default:
		return "bg-secondary"
	}
}
