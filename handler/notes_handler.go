package handler

import (
	"main/dto"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NotesHandler struct {
	service *usecase.NotesService
}

func NewNotesHandler(service *usecase.NotesService) *NotesHandler {
	return &NotesHandler{service: service}
}

// CreateNote persists the note and reports the XP it earned.
func (h *NotesHandler) CreateNote(c *gin.Context) {
	userID := c.GetString("user_id")

	var note model.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		utils.BadRequest(c, "Title and content are required")
		return
	}
	note.UserID = userID

	reward, err := h.service.CreateNote(c.Request.Context(), &note)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	response := gin.H{"note": dto.ToNoteResponse(&note)}
	if reward != nil {
		response["xp_gained"] = reward.XPGained
		response["new_xp"] = reward.NewXP
		response["new_level"] = reward.NewLevel
		response["did_level_up"] = reward.DidLevelUp
	}

	utils.Created(c, response)
}

func (h *NotesHandler) GetNotes(c *gin.Context) {
	userID := c.GetString("user_id")

	notes, err := h.service.GetUserNotes(c.Request.Context(), userID)
	if err != nil {
		utils.TrackError("notes", "fetch_failed")
		utils.InternalError(c, "Failed to fetch notes")
		return
	}

	utils.Success(c, gin.H{
		"notes": dto.ToNoteResponses(notes),
		"count": len(notes),
	})
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	var updates model.Note
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	note, err := h.service.UpdateNote(c.Request.Context(), noteID, userID, &updates)
	if err == repository.ErrNoteNotFound {
		utils.NotFound(c, "Note not found")
		return
	}
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"note": dto.ToNoteResponse(note)})
}

func (h *NotesHandler) DeleteNote(c *gin.Context) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	err := h.service.DeleteNote(c.Request.Context(), noteID, userID)
	if err == repository.ErrNoteNotFound {
		utils.NotFound(c, "Note not found")
		return
	}
	if err != nil {
		utils.TrackError("notes", "delete_failed")
		utils.InternalError(c, "Failed to delete note")
		return
	}

	utils.Success(c, gin.H{"message": "Note deleted"})
}
