package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gopherblog/internal/app"
	"gopherblog/internal/model"
	"gopherblog/internal/transport/http/response"
)

type AIHandler struct {
	aiService *app.AIService
}

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type TextRequest struct {
	Text string `json:"text" binding:"required"`
}

func NewAIHandler(aiService *app.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// Generate keeps the original route shape: the user and model ride in the
// query string, the prompt in the body.
func (h *AIHandler) Generate(c *gin.Context) {
	userID, ok := parseIDQuery(c, "user_id")
	if !ok {
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	resp, err := h.aiService.Generate(c.Request.Context(), app.GenerateInput{
		UserID: userID,
		Prompt: req.Prompt,
		Model:  c.Query("model"),
	})
	h.writeGenerated(c, resp, err)
}

func (h *AIHandler) Summarize(c *gin.Context) {
	userID, ok := parseIDQuery(c, "user_id")
	if !ok {
		return
	}

	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	resp, err := h.aiService.Summarize(c.Request.Context(), userID, req.Text, c.Query("model"))
	h.writeGenerated(c, resp, err)
}

func (h *AIHandler) Translate(c *gin.Context) {
	userID, ok := parseIDQuery(c, "user_id")
	if !ok {
		return
	}

	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	resp, err := h.aiService.Translate(c.Request.Context(), userID, req.Text, c.Query("target_language"), c.Query("model"))
	h.writeGenerated(c, resp, err)
}

func (h *AIHandler) writeGenerated(c *gin.Context, resp *model.AIResponse, err error) {
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, err.Error())
		case errors.Is(err, app.ErrUpstream):
			response.Error(c, http.StatusInternalServerError, response.CodeUpstreamFailed, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "generate ai response failed")
		}
		return
	}

	response.Created(c, resp)
}

func (h *AIHandler) List(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	responses, err := h.aiService.List(skip, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list ai responses failed")
		return
	}

	response.OK(c, responses)
}

func (h *AIHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.aiService.GetByID(id)
	if err != nil {
		if errors.Is(err, app.ErrResponseNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeResponseNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch ai response failed")
		return
	}

	response.OK(c, resp)
}

func (h *AIHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	responses, err := h.aiService.ListByUser(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list ai responses by user failed")
		return
	}

	response.OK(c, responses)
}

func (h *AIHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.aiService.Delete(id); err != nil {
		if errors.Is(err, app.ErrResponseNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeResponseNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete ai response failed")
		return
	}

	response.NoContent(c)
}
