package handler

import (
	"main/dto"
	"main/model"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GuestHandler serves unauthenticated sessions. Entities live in the guest
// store under an opaque token until a sync merges them into an account or
// the retention window closes.
type GuestHandler struct {
	store *services.GuestStore
}

func NewGuestHandler(store *services.GuestStore) *GuestHandler {
	return &GuestHandler{store: store}
}

// StartGuestSession issues a fresh guest token. No state is written until the
// guest creates something.
func (h *GuestHandler) StartGuestSession(c *gin.Context) {
	utils.Created(c, gin.H{
		"guest_token": services.NewGuestToken(),
		"expires_in":  services.GuestDataTTL.String(),
	})
}

// Notes

func (h *GuestHandler) CreateNote(c *gin.Context) {
	token := c.GetString("guest_token")

	var note model.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		utils.BadRequest(c, "Title and content are required")
		return
	}

	created, err := h.store.CreateNote(c.Request.Context(), token, &note)
	if err != nil {
		utils.TrackError("guest", "note_create_failed")
		utils.InternalError(c, "Failed to create note")
		return
	}

	utils.Created(c, gin.H{"note": dto.ToNoteResponse(created)})
}

func (h *GuestHandler) GetNotes(c *gin.Context) {
	token := c.GetString("guest_token")

	notes, err := h.store.ListNotes(c.Request.Context(), token)
	if err != nil {
		utils.TrackError("guest", "note_list_failed")
		utils.InternalError(c, "Failed to fetch notes")
		return
	}

	utils.Success(c, gin.H{
		"notes": dto.ToNoteResponses(notes),
		"count": len(notes),
	})
}

func (h *GuestHandler) UpdateNote(c *gin.Context) {
	token := c.GetString("guest_token")

	var upd model.NoteUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	note, err := h.store.UpdateNote(c.Request.Context(), token, c.Param("id"), &upd)
	if err == services.ErrGuestEntityNotFound {
		utils.NotFound(c, "Note not found")
		return
	}
	if err != nil {
		utils.TrackError("guest", "note_update_failed")
		utils.InternalError(c, "Failed to update note")
		return
	}

	utils.Success(c, gin.H{"note": dto.ToNoteResponse(note)})
}

func (h *GuestHandler) DeleteNote(c *gin.Context) {
	token := c.GetString("guest_token")

	err := h.store.DeleteNote(c.Request.Context(), token, c.Param("id"))
	if err == services.ErrGuestEntityNotFound {
		utils.NotFound(c, "Note not found")
		return
	}
	if err != nil {
		utils.TrackError("guest", "note_delete_failed")
		utils.InternalError(c, "Failed to delete note")
		return
	}

	utils.Success(c, gin.H{"message": "Note deleted"})
}

// Tasks

func (h *GuestHandler) CreateTask(c *gin.Context) {
	token := c.GetString("guest_token")

	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		utils.BadRequest(c, "Title is required")
		return
	}
	task.Completed = false

	created, err := h.store.CreateTask(c.Request.Context(), token, &task)
	if err != nil {
		utils.TrackError("guest", "task_create_failed")
		utils.InternalError(c, "Failed to create task")
		return
	}

	utils.Created(c, gin.H{"task": dto.ToTaskResponse(created)})
}

func (h *GuestHandler) GetTasks(c *gin.Context) {
	token := c.GetString("guest_token")

	tasks, err := h.store.ListTasks(c.Request.Context(), token)
	if err != nil {
		utils.TrackError("guest", "task_list_failed")
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}

	utils.Success(c, gin.H{
		"tasks": dto.ToTaskResponses(tasks),
		"count": len(tasks),
	})
}

func (h *GuestHandler) UpdateTask(c *gin.Context) {
	token := c.GetString("guest_token")

	var upd model.TaskUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	if upd.Priority != nil && !utils.ValidatePriorityValue(string(*upd.Priority)) {
		utils.BadRequest(c, "Invalid priority level")
		return
	}

	task, err := h.store.UpdateTask(c.Request.Context(), token, c.Param("id"), &upd)
	if err == services.ErrGuestEntityNotFound {
		utils.NotFound(c, "Task not found")
		return
	}
	if err != nil {
		utils.TrackError("guest", "task_update_failed")
		utils.InternalError(c, "Failed to update task")
		return
	}

	// Guest task completion earns nothing; XP only moves for accounts.
	utils.Success(c, gin.H{"task": dto.ToTaskResponse(task)})
}

func (h *GuestHandler) DeleteTask(c *gin.Context) {
	token := c.GetString("guest_token")

	err := h.store.DeleteTask(c.Request.Context(), token, c.Param("id"))
	if err == services.ErrGuestEntityNotFound {
		utils.NotFound(c, "Task not found")
		return
	}
	if err != nil {
		utils.TrackError("guest", "task_delete_failed")
		utils.InternalError(c, "Failed to delete task")
		return
	}

	utils.Success(c, gin.H{"message": "Task deleted"})
}

// Ideas

func (h *GuestHandler) CreateIdea(c *gin.Context) {
	token := c.GetString("guest_token")

	var idea model.Idea
	if err := c.ShouldBindJSON(&idea); err != nil {
		utils.BadRequest(c, "Title and content are required")
		return
	}

	created, err := h.store.CreateIdea(c.Request.Context(), token, &idea)
	if err != nil {
		utils.TrackError("guest", "idea_create_failed")
		utils.InternalError(c, "Failed to create idea")
		return
	}

	utils.Created(c, gin.H{"idea": dto.ToIdeaResponse(created)})
}

func (h *GuestHandler) GetIdeas(c *gin.Context) {
	token := c.GetString("guest_token")

	ideas, err := h.store.ListIdeas(c.Request.Context(), token)
	if err != nil {
		utils.TrackError("guest", "idea_list_failed")
		utils.InternalError(c, "Failed to fetch ideas")
		return
	}

	utils.Success(c, gin.H{
		"ideas": dto.ToIdeaResponses(ideas),
		"count": len(ideas),
	})
}

func (h *GuestHandler) UpdateIdea(c *gin.Context) {
	token := c.GetString("guest_token")

	var upd model.IdeaUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	idea, err := h.store.UpdateIdea(c.Request.Context(), token, c.Param("id"), &upd)
	if err == services.ErrGuestEntityNotFound {
		utils.NotFound(c, "Idea not found")
		return
	}
	if err != nil {
		utils.TrackError("guest", "idea_update_failed")
		utils.InternalError(c, "Failed to update idea")
		return
	}

	utils.Success(c, gin.H{"idea": dto.ToIdeaResponse(idea)})
}

func (h *GuestHandler) DeleteIdea(c *gin.Context) {
	token := c.GetString("guest_token")

	err := h.store.DeleteIdea(c.Request.Context(), token, c.Param("id"))
	if err == services.ErrGuestEntityNotFound {
		utils.NotFound(c, "Idea not found")
		return
	}
	if err != nil {
		utils.TrackError("guest", "idea_delete_failed")
		utils.InternalError(c, "Failed to delete idea")
		return
	}

	utils.Success(c, gin.H{"message": "Idea deleted"})
}

// Events

func (h *GuestHandler) CreateEvent(c *gin.Context) {
	token := c.GetString("guest_token")

	var event model.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.BadRequest(c, "Title and start date are required")
		return
	}
	if !event.EndDate.IsZero() && event.EndDate.Before(event.StartDate) {
		utils.BadRequest(c, "End date cannot be before start date")
		return
	}

	created, err := h.store.CreateEvent(c.Request.Context(), token, &event)
	if err != nil {
		utils.TrackError("guest", "event_create_failed")
		utils.InternalError(c, "Failed to create event")
		return
	}

	utils.Created(c, gin.H{"event": dto.ToEventResponse(created)})
}

func (h *GuestHandler) GetEvents(c *gin.Context) {
	token := c.GetString("guest_token")

	events, err := h.store.ListEvents(c.Request.Context(), token)
	if err != nil {
		utils.TrackError("guest", "event_list_failed")
		utils.InternalError(c, "Failed to fetch events")
		return
	}

	utils.Success(c, gin.H{
		"events": dto.ToEventResponses(events),
		"count":  len(events),
	})
}

func (h *GuestHandler) UpdateEvent(c *gin.Context) {
	token := c.GetString("guest_token")

	var upd model.EventUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	event, err := h.store.UpdateEvent(c.Request.Context(), token, c.Param("id"), &upd)
	if err == services.ErrGuestEntityNotFound {
		utils.NotFound(c, "Event not found")
		return
	}
	if err != nil {
		utils.TrackError("guest", "event_update_failed")
		utils.InternalError(c, "Failed to update event")
		return
	}

	utils.Success(c, gin.H{"event": dto.ToEventResponse(event)})
}

func (h *GuestHandler) DeleteEvent(c *gin.Context) {
	token := c.GetString("guest_token")

	err := h.store.DeleteEvent(c.Request.Context(), token, c.Param("id"))
	if err == services.ErrGuestEntityNotFound {
		utils.NotFound(c, "Event not found")
		return
	}
	if err != nil {
		utils.TrackError("guest", "event_delete_failed")
		utils.InternalError(c, "Failed to delete event")
		return
	}

	utils.Success(c, gin.H{"message": "Event deleted"})
}
