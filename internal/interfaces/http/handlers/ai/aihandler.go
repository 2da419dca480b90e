package ai

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	aiapp "hilla/internal/application/ai"
	"hilla/internal/shared/logger"
	"hilla/internal/shared/utils"
)

type AIHandler struct {
	generateUC aiapp.GenerateExecutor
	logger     logger.Interface
}

func NewAIHandler(generateUC aiapp.GenerateExecutor) *AIHandler {
	return &AIHandler{
		generateUC: generateUC,
		logger:     logger.NewLogger(),
	}
}

type GenerateRequest struct {
	Text string `json:"text" binding:"required"`
	Mode string `json:"mode" binding:"required"`
}

// Generate handles POST /api/ai/generate
func (h *AIHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateUC.Execute(c.Request.Context(), aiapp.GenerateCommand{
		Text: req.Text,
		Mode: req.Mode,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"text": result.Text})
}

// respondError maps gateway failures onto the endpoint contract:
// missing provider is 503, provider invocation failures are 500 with
// a raw error plus a user-facing explanation.
func (h *AIHandler) respondError(c *gin.Context, err error) {
	if stderrors.Is(err, aiapp.ErrNoProvider) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "no text generation provider is configured",
		})
		return
	}

	var provErr *aiapp.ProviderError
	if stderrors.As(err, &provErr) {
		h.logger.Errorw("text generation failed",
			"provider", provErr.Provider,
			"class", string(provErr.Class),
			"error", provErr.Raw)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        provErr.Raw,
			"user_message": provErr.UserMessage(),
		})
		return
	}

	utils.ErrorResponseWithError(c, err)
}
