package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacesedan/sentiscope/internal/mocks"
	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/spacesedan/sentiscope/internal/monitoring"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMaxTextLength = 40

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testServer struct {
	router  *gin.Engine
	builder *mocks.MockReportBuilder
	ready   *atomic.Bool
}

func newTestServer(t *testing.T) testServer {
	ctrl := gomock.NewController(t)
	builder := mocks.NewMockReportBuilder(ctrl)
	metrics := monitoring.NewMetrics()
	ready := &atomic.Bool{}

	handler := NewHandler(builder, metrics, ready, testMaxTextLength)
	return testServer{
		router:  NewRouter(handler, metrics),
		builder: builder,
		ready:   ready,
	}
}

func (s testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func positiveReport(text string) models.AnalysisReport {
	return models.AnalysisReport{
		Text:                 text,
		Language:             "en",
		TextBlobPolarity:     0.625,
		TextBlobSubjectivity: 0.75,
		VaderCompound:        0.8439,
		NRCEmotions:          map[string]float64{"joy": 0.5, "positive": 0.5},
		Keywords:             []string{"love", "amazing"},
		CensoredText:         text,
		FinalLabel:           models.LabelStrongPositive,
	}
}

func TestHandler_Index(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil))

	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), "No text submitted yet.")
	req.NotContains(rec.Body.String(), "emotionChart")

	_, err := uuid.Parse(rec.Header().Get(REQUEST_ID_HEADER))
	req.NoError(err)
}

func TestHandler_AnalyzePage(t *testing.T) {
	t.Run("should render the report and the chart", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		text := "I love this, it's amazing!"
		s.builder.EXPECT().Build(text).Return(positiveReport(text), nil)

		rec := s.do(formRequest(url.Values{"text": {text}}))

		req.Equal(http.StatusOK, rec.Code)
		body := rec.Body.String()
		req.Contains(body, "Strong Positive")
		req.Contains(body, "emotionChart")
		req.Contains(body, "amazing")
		req.Contains(body, "anticipation")
	})

	t.Run("should render no result for empty text", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.builder.EXPECT().Build("").Return(models.AnalysisReport{}, nil)

		rec := s.do(formRequest(url.Values{"text": {""}}))

		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), "No text submitted yet.")
		req.NotContains(rec.Body.String(), "emotionChart")
		req.NotContains(rec.Body.String(), "alert-danger")
	})

	t.Run("should strip markdown before building", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.builder.EXPECT().Build("I love this").Return(positiveReport("I love this"), nil)

		rec := s.do(formRequest(url.Values{
			"text":   {"**I love** [this](https://example.com)"},
			"format": {models.FORMAT_MARKDOWN},
		}))

		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), "checked")
	})

	t.Run("should reject oversized text without building", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.builder.EXPECT().Build(gomock.Any()).Times(0)

		rec := s.do(formRequest(url.Values{"text": {strings.Repeat("a", testMaxTextLength+1)}}))

		req.Equal(http.StatusBadRequest, rec.Code)
		req.Contains(rec.Body.String(), "text is too long")
	})

	t.Run("should reject an unknown format", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.builder.EXPECT().Build(gomock.Any()).Times(0)

		rec := s.do(formRequest(url.Values{"text": {"hello"}, "format": {"html"}}))

		req.Equal(http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_AnalyzeAPI(t *testing.T) {
	t.Run("should return the report as json", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		text := "I love this, it's amazing!"
		s.builder.EXPECT().Build(text).Return(positiveReport(text), nil)

		rec := s.do(jsonRequest(`{"text": "I love this, it's amazing!"}`))

		req.Equal(http.StatusOK, rec.Code)
		req.JSONEq(`{
			"text": "I love this, it's amazing!",
			"language": "en",
			"textblob_polarity": 0.625,
			"textblob_subjectivity": 0.75,
			"vader_compound": 0.8439,
			"nrc_emotions": {"joy": 0.5, "positive": 0.5},
			"keywords": ["love", "amazing"],
			"contains_profanity": false,
			"censored_text": "I love this, it's amazing!",
			"final_label": "Strong Positive"
		}`, rec.Body.String())
	})

	t.Run("should return an empty object for blank text", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.builder.EXPECT().Build("   ").Return(models.AnalysisReport{}, nil)

		rec := s.do(jsonRequest(`{"text": "   "}`))

		req.Equal(http.StatusOK, rec.Code)
		req.JSONEq(`{}`, rec.Body.String())
	})

	t.Run("should reject oversized text", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.builder.EXPECT().Build(gomock.Any()).Times(0)

		rec := s.do(jsonRequest(`{"text": "` + strings.Repeat("é", testMaxTextLength+1) + `"}`))

		req.Equal(http.StatusBadRequest, rec.Code)
		req.Contains(rec.Body.String(), "text is too long")
	})

	t.Run("should accept text at the limit counted in characters", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		text := strings.Repeat("é", testMaxTextLength)
		s.builder.EXPECT().Build(text).Return(positiveReport(text), nil)

		rec := s.do(jsonRequest(`{"text": "` + text + `"}`))

		req.Equal(http.StatusOK, rec.Code)
	})

	t.Run("should reject malformed json", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)

		rec := s.do(jsonRequest(`{"text": `))

		req.Equal(http.StatusBadRequest, rec.Code)
		req.Contains(rec.Body.String(), `"error"`)
	})

	t.Run("should map builder failures to 500", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.builder.EXPECT().Build("hello").Return(models.AnalysisReport{}, errors.New("boom"))

		rec := s.do(jsonRequest(`{"text": "hello"}`))

		req.Equal(http.StatusInternalServerError, rec.Code)
		req.JSONEq(`{"error": "boom"}`, rec.Body.String())
	})

	t.Run("should recover from a panicking analyzer", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.builder.EXPECT().Build("hello").DoAndReturn(func(string) (models.AnalysisReport, error) {
			panic("analyzer exploded")
		})

		rec := s.do(jsonRequest(`{"text": "hello"}`))

		req.Equal(http.StatusInternalServerError, rec.Code)
		_, err := uuid.Parse(rec.Header().Get(REQUEST_ID_HEADER))
		req.NoError(err)

		metrics := s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		req.Contains(metrics.Body.String(),
			`sentiscope_http_requests_total{method="POST",route="/api/v1/analyze",status="500"} 1`)
	})
}

func TestHandler_Health(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)

	req.Equal(http.StatusOK, s.do(httptest.NewRequest(http.MethodGet, "/healthz", nil)).Code)
	req.Equal(http.StatusServiceUnavailable, s.do(httptest.NewRequest(http.MethodGet, "/readyz", nil)).Code)

	s.ready.Store(true)
	req.Equal(http.StatusOK, s.do(httptest.NewRequest(http.MethodGet, "/readyz", nil)).Code)
}

func TestRequestID_KeepsCallerValue(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)
	id := uuid.NewString()

	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.Header.Set(REQUEST_ID_HEADER, id)
	rec := s.do(r)

	req.Equal(id, rec.Header().Get(REQUEST_ID_HEADER))
}

func TestObserveRequests_ExposedOnMetrics(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)

	s.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	s.do(httptest.NewRequest(http.MethodGet, "/missing", nil))
	rec := s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `sentiscope_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
	req.Contains(rec.Body.String(), `route="unmatched",status="404"`)
}
