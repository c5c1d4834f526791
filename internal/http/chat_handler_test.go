package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"empath-llm/internal/classifier"
	"empath-llm/internal/domain"
	"empath-llm/internal/service"
)

func setupRouter() (*gin.Engine, *service.ChatService) {
	gin.SetMode(gin.TestMode)

	cultures := domain.LoadCulturalProfiles()
	logger := zap.NewNop()
	chatSvc := service.NewChatService(
		service.NewDetectorService(classifier.NewKeywordClassifier(), cultures, logger),
		service.NewResponderService(nil, cultures, logger),
		service.NewTrendService(0),
		service.NewProfilerService(),
		service.NewSessionManager(),
		logger,
	)

	chatH := NewChatHandler(logger, chatSvc, cultures)
	analyticsH := NewAnalyticsHandler(logger, chatSvc)
	return NewRouter(logger, chatH, analyticsH), chatSvc
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupRouter()

	rec := performRequest(r, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestCreateSession_Success(t *testing.T) {
	r, _ := setupRouter()

	rec := performRequest(r, http.MethodPost, "/session", map[string]string{
		"cultural_context": "western",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["session_id"] == "" || resp["session_id"] == nil {
		t.Fatalf("expected session_id in response: %v", resp)
	}
	if resp["cultural_context"] != "western" {
		t.Fatalf("expected western context, got %v", resp["cultural_context"])
	}
}

func TestCreateSession_EmptyBodyDefaultsCulture(t *testing.T) {
	r, _ := setupRouter()

	rec := performRequest(r, http.MethodPost, "/session", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["cultural_context"] != domain.DefaultCulture {
		t.Fatalf("expected default context, got %v", resp["cultural_context"])
	}
}

func TestCreateSession_UnknownCulture(t *testing.T) {
	r, _ := setupRouter()

	rec := performRequest(r, http.MethodPost, "/session", map[string]string{
		"cultural_context": "martian",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestUpdateContext_Success(t *testing.T) {
	r, chatSvc := setupRouter()
	session := chatSvc.Sessions().Create("default")

	rec := performRequest(r, http.MethodPut, "/session/"+session.ID+"/context", map[string]string{
		"cultural_context": "eastern",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if session.CulturalContext() != "eastern" {
		t.Fatalf("expected context updated, got %s", session.CulturalContext())
	}
}

func TestUpdateContext_UnknownSession(t *testing.T) {
	r, _ := setupRouter()

	rec := performRequest(r, http.MethodPut, "/session/nope/context", map[string]string{
		"cultural_context": "eastern",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestUpdateContext_MissingField(t *testing.T) {
	r, chatSvc := setupRouter()
	session := chatSvc.Sessions().Create("default")

	rec := performRequest(r, http.MethodPut, "/session/"+session.ID+"/context", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestPostMessage_Success(t *testing.T) {
	r, chatSvc := setupRouter()
	session := chatSvc.Sessions().Create("default")

	rec := performRequest(r, http.MethodPost, "/message", map[string]string{
		"session_id": session.ID,
		"content":    "I am happy with how this turned out",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var result service.ChatResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.EmotionAnalysis.PrimaryEmotion != "joy" {
		t.Fatalf("expected joy, got %s", result.EmotionAnalysis.PrimaryEmotion)
	}
	if result.BotResponse == "" {
		t.Fatalf("expected non-empty bot response")
	}
}

func TestPostMessage_UnknownSession(t *testing.T) {
	r, _ := setupRouter()

	rec := performRequest(r, http.MethodPost, "/message", map[string]string{
		"session_id": "missing",
		"content":    "hello",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestPostMessage_MissingContent(t *testing.T) {
	r, chatSvc := setupRouter()
	session := chatSvc.Sessions().Create("default")

	rec := performRequest(r, http.MethodPost, "/message", map[string]string{
		"session_id": session.ID,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestGetTrends_EmptySession(t *testing.T) {
	r, chatSvc := setupRouter()
	session := chatSvc.Sessions().Create("default")

	rec := performRequest(r, http.MethodGet, "/session/"+session.ID+"/trends", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var insights service.TrendInsights
	if err := json.Unmarshal(rec.Body.Bytes(), &insights); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if insights.Status != "No conversation data available" {
		t.Fatalf("unexpected status: %q", insights.Status)
	}
}

func TestGetTrends_UnknownSession(t *testing.T) {
	r, _ := setupRouter()

	rec := performRequest(r, http.MethodGet, "/session/missing/trends", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestGetSummary_AfterConversation(t *testing.T) {
	r, chatSvc := setupRouter()
	session := chatSvc.Sessions().Create("default")

	for _, msg := range []string{"I am sad about work", "my job makes me miserable"} {
		rec := performRequest(r, http.MethodPost, "/message", map[string]string{
			"session_id": session.ID,
			"content":    msg,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", rec.Code)
		}
	}

	rec := performRequest(r, http.MethodGet, "/session/"+session.ID+"/summary", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var summary service.SessionSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if summary.TotalMessages != 2 {
		t.Fatalf("expected 2 messages, got %d", summary.TotalMessages)
	}
	if summary.DominantEmotion != "sadness" {
		t.Fatalf("expected sadness dominant, got %s", summary.DominantEmotion)
	}
}

func TestGetSummary_UnknownSession(t *testing.T) {
	r, _ := setupRouter()

	rec := performRequest(r, http.MethodGet, "/session/missing/summary", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestResponsesAreJSON(t *testing.T) {
	r, _ := setupRouter()

	rec := performRequest(r, http.MethodGet, "/health", nil)
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
}
