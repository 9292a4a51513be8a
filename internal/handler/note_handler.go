package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstrly/internal/domain"
	"gstrly/internal/middleware"
	"gstrly/internal/service"
)

// NoteHandler handles credit and debit note endpoints.
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// Create handles POST /api/v1/notes
// @Summary Create a credit or debit note
// @Description Create a note against an issued invoice. Values are entered positive; credit notes are subtracted during return aggregation.
// @Tags notes
// @Accept json
// @Produce json
// @Param request body CreateNoteRequest true "Note details"
// @Success 201 {object} Response{data=domain.Note} "Note created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 409 {object} ErrorResponseBody "Note number already exists"
// @Security BearerAuth
// @Router /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	businessID, err := middleware.GetBusinessID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing business context")
		return
	}

	var input service.CreateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if input.Kind != domain.NoteCredit && input.Kind != domain.NoteDebit {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "kind must be credit or debit")
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), businessID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, note)
}

// List handles GET /api/v1/notes
// @Summary List notes
// @Description List credit or debit notes of the business, newest first
// @Tags notes
// @Produce json
// @Param kind query string false "Note kind: credit or debit" default(credit)
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Note,meta=PagMeta} "List of notes"
// @Failure 400 {object} ErrorResponseBody "Invalid kind"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	businessID, err := middleware.GetBusinessID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing business context")
		return
	}

	kind := domain.NoteKind(c.DefaultQuery("kind", string(domain.NoteCredit)))
	if kind != domain.NoteCredit && kind != domain.NoteDebit {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "kind must be credit or debit")
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	notes, total, err := h.noteService.List(c.Request.Context(), businessID, kind, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, notes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/notes/:id
// @Summary Get note by ID
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} Response{data=domain.Note} "Note details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Note not found"
// @Security BearerAuth
// @Router /notes/{id} [get]
func (h *NoteHandler) GetByID(c *gin.Context) {
	businessID, err := middleware.GetBusinessID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing business context")
		return
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid note ID")
		return
	}

	note, err := h.noteService.GetByID(c.Request.Context(), businessID, noteID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}

// Delete handles DELETE /api/v1/notes/:id
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Note deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Note not found"
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	businessID, err := middleware.GetBusinessID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing business context")
		return
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid note ID")
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), businessID, noteID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "note deleted"})
}
