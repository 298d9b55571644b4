//go:generate go run go.uber.org/mock/mockgen -source=handlers.go -destination=../mocks/mock_report_builder.go -package=mocks
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/spacesedan/sentiscope/internal/monitoring"
	"github.com/spacesedan/sentiscope/internal/sentiment"
)

var ErrTextTooLong = errors.New("text is too long")

type ReportBuilder interface {
	Build(text string) (models.AnalysisReport, error)
}

type Handler struct {
	builder       ReportBuilder
	metrics       *monitoring.Metrics
	ready         *atomic.Bool
	maxTextLength int
}

func NewHandler(builder ReportBuilder, metrics *monitoring.Metrics, ready *atomic.Bool, maxTextLength int) *Handler {
	return &Handler{
		builder:       builder,
		metrics:       metrics,
		ready:         ready,
		maxTextLength: maxTextLength,
	}
}

type pageData struct {
	Text     string
	Markdown bool
	Report   *models.AnalysisReport
	Emotions []models.EmotionShare
	Error    string
}

// Index handles GET /
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, INDEX_TEMPLATE, pageData{})
}

// AnalyzePage handles POST /analyze
func (h *Handler) AnalyzePage(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("[Handler] Invalid form submission", slog.String("error", err.Error()))
		c.HTML(http.StatusBadRequest, INDEX_TEMPLATE, pageData{Error: err.Error()})
		return
	}

	data := pageData{Text: req.Text, Markdown: req.IsMarkdown()}

	report, err := h.analyze(c, req)
	if err != nil {
		data.Error = err.Error()
		c.HTML(statusFor(err), INDEX_TEMPLATE, data)
		return
	}

	if !report.IsEmpty() {
		data.Report = &report
		data.Emotions = report.ProjectedEmotions()
	}
	c.HTML(http.StatusOK, INDEX_TEMPLATE, data)
}

// AnalyzeAPI handles POST /api/v1/analyze
func (h *Handler) AnalyzeAPI(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("[Handler] Invalid analyze request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.analyze(c, req)
	if err != nil {
		c.JSON(statusFor(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	if report.IsEmpty() {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Readyz(c *gin.Context) {
	if h.ready == nil || !h.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (h *Handler) analyze(c *gin.Context, req models.AnalyzeRequest) (models.AnalysisReport, error) {
	if n := utf8.RuneCountInString(req.Text); n > h.maxTextLength {
		slog.Warn("[Handler] Rejected oversized text",
			slog.Int("length", n),
			slog.String("request_id", c.GetString(REQUEST_ID_KEY)))
		return models.AnalysisReport{}, fmt.Errorf("%w: %d characters, limit is %d", ErrTextTooLong, n, h.maxTextLength)
	}

	text := req.Text
	if req.IsMarkdown() {
		text = sentiment.ConvertMarkdownToText(text)
	}

	start := time.Now()
	report, err := h.builder.Build(text)
	if err != nil {
		slog.Error("[Handler] Report build failed",
			slog.String("error", err.Error()),
			slog.String("request_id", c.GetString(REQUEST_ID_KEY)))
		return models.AnalysisReport{}, err
	}
	h.metrics.ObserveReport(report, time.Since(start))

	slog.Debug("[Handler] Report built",
		slog.String("label", string(report.FinalLabel)),
		slog.String("language", report.Language),
		slog.String("request_id", c.GetString(REQUEST_ID_KEY)))

	return report, nil
}

func statusFor(err error) int {
	if errors.Is(err, ErrTextTooLong) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
