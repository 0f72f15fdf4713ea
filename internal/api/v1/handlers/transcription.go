package handlers

import (
	goerrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lecture-whisper/internal/api/errors"
	"lecture-whisper/internal/api/middleware"
	"lecture-whisper/internal/api/v1/dto"
	"lecture-whisper/internal/api/v1/services"
	"lecture-whisper/internal/app/repository"
)

// TranscriptionHandler handles submission and history endpoints.
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler.
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// SubmitLegacy handles POST /transcribe_and_translate/
// Original endpoint shape: success {original_text, translated_text},
// failure {"error": message}. Failure kind is additionally signaled through
// the status code.
//
// @Summary Transcribe and translate an audio clip
// @Description Uploads an audio clip, translates it toward the target language, transcribes the original, and appends both to the user's history
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio clip"
// @Param username formData string true "History key"
// @Param target_language formData string true "Target language code, forwarded as-is"
// @Success 200 {object} dto.SubmitTranscriptionResponse "Transcription persisted"
// @Failure 422 {object} dto.ErrorResponse "Missing form fields"
// @Failure 502 {object} dto.ErrorResponse "Speech engine failure"
// @Failure 500 {object} dto.ErrorResponse "Staging or persistence failure"
// @Router /transcribe_and_translate/ [post]
func (h *TranscriptionHandler) SubmitLegacy(c *gin.Context) {
	var req dto.SubmitTranscriptionRequest
	if err := middleware.ValidateForm(c, &req); err != nil {
		respondLegacyError(c, err)
		return
	}

	response, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		respondLegacyError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HistoryLegacy handles GET /get_transcriptions/?username=
// An unknown username is informational, never an error.
//
// @Summary Get a user's transcription history
// @Description Returns the user's full transcription history in submission order
// @Tags transcriptions
// @Produce json
// @Param username query string true "History key"
// @Success 200 {object} dto.HistoryResponse "Full history, or a message when the user has none"
// @Failure 422 {object} dto.ErrorResponse "Missing username"
// @Failure 500 {object} dto.ErrorResponse "History store failure"
// @Router /get_transcriptions/ [get]
func (h *TranscriptionHandler) HistoryLegacy(c *gin.Context) {
	var query dto.HistoryQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		respondLegacyError(c, err)
		return
	}

	response, err := h.service.History(c.Request.Context(), query.Username)
	if goerrors.Is(err, repository.ErrUserNotFound) {
		c.JSON(http.StatusOK, dto.NoHistoryResponse{
			Message: fmt.Sprintf("No transcriptions found for user %s", query.Username),
		})
		return
	}
	if err != nil {
		respondLegacyError(c, errors.NewPersistenceError(err))
		return
	}

	c.JSON(http.StatusOK, response)
}

// Submit handles POST /api/v1/transcriptions — same pipeline as the legacy
// endpoint, with structured APIError failures.
func (h *TranscriptionHandler) Submit(c *gin.Context) {
	var req dto.SubmitTranscriptionRequest
	if err := middleware.ValidateForm(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// History handles GET /api/v1/transcriptions/:username.
func (h *TranscriptionHandler) History(c *gin.Context) {
	username := c.Param("username")

	response, err := h.service.History(c.Request.Context(), username)
	if goerrors.Is(err, repository.ErrUserNotFound) {
		c.JSON(http.StatusOK, dto.NoHistoryResponse{
			Message: fmt.Sprintf("No transcriptions found for user %s", username),
		})
		return
	}
	if err != nil {
		middleware.HandleError(c, errors.NewPersistenceError(err))
		return
	}

	c.JSON(http.StatusOK, response)
}

// respondLegacyError collapses an error into the legacy {"error": message}
// body while keeping the kind-mapped status code.
func respondLegacyError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if apiErr, ok := err.(*errors.APIError); ok {
		status = apiErr.HTTPStatus()
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: err.Error()})
}
