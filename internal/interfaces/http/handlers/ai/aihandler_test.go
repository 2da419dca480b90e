package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aiapp "hilla/internal/application/ai"
)

type stubGenerate struct {
	fn func(ctx context.Context, cmd aiapp.GenerateCommand) (*aiapp.GenerateResult, error)
}

func (s stubGenerate) Execute(ctx context.Context, cmd aiapp.GenerateCommand) (*aiapp.GenerateResult, error) {
	return s.fn(ctx, cmd)
}

func newTestRouter(stub stubGenerate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/api/ai/generate", NewAIHandler(stub).Generate)
	return engine
}

func doGenerate(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/ai/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerate_Success(t *testing.T) {
	router := newTestRouter(stubGenerate{fn: func(ctx context.Context, cmd aiapp.GenerateCommand) (*aiapp.GenerateResult, error) {
		return &aiapp.GenerateResult{Text: "summary of the issue"}, nil
	}})

	w := doGenerate(router, `{"text":"wifi is down in Hall B","mode":"summary"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "summary of the issue", resp["text"])
}

func TestGenerate_MissingFields(t *testing.T) {
	router := newTestRouter(stubGenerate{fn: func(ctx context.Context, cmd aiapp.GenerateCommand) (*aiapp.GenerateResult, error) {
		t.Fatal("executor must not run on a bad request")
		return nil, nil
	}})

	w := doGenerate(router, `{"text":"wifi is down"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerate_NoProviderIs503(t *testing.T) {
	router := newTestRouter(stubGenerate{fn: func(ctx context.Context, cmd aiapp.GenerateCommand) (*aiapp.GenerateResult, error) {
		return nil, aiapp.ErrNoProvider
	}})

	w := doGenerate(router, `{"text":"wifi is down","mode":"summary"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "no text generation provider is configured")
}

func TestGenerate_ProviderFailureIs500WithBothMessages(t *testing.T) {
	router := newTestRouter(stubGenerate{fn: func(ctx context.Context, cmd aiapp.GenerateCommand) (*aiapp.GenerateResult, error) {
		return nil, &aiapp.ProviderError{
			Provider: "gemini",
			Class:    aiapp.ClassQuotaExceeded,
			Raw:      "googleapi: Error 429: Quota exceeded",
		}
	}})

	w := doGenerate(router, `{"text":"wifi is down","mode":"summary"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "googleapi: Error 429: Quota exceeded", resp["error"])
	assert.NotEmpty(t, resp["user_message"])
	assert.NotEqual(t, resp["error"], resp["user_message"], "raw detail is never the user-facing text")
}
