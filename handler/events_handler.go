package handler

import (
	"time"

	"main/dto"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	service *usecase.EventsService
}

func NewEventsHandler(service *usecase.EventsService) *EventsHandler {
	return &EventsHandler{service: service}
}

// CreateEvent persists the calendar event and reports the XP it earned.
func (h *EventsHandler) CreateEvent(c *gin.Context) {
	userID := c.GetString("user_id")

	var event model.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.BadRequest(c, "Title and start date are required")
		return
	}
	event.UserID = userID

	reward, err := h.service.CreateEvent(c.Request.Context(), &event)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	response := gin.H{"event": dto.ToEventResponse(&event)}
	if reward != nil {
		response["xp_gained"] = reward.XPGained
		response["new_xp"] = reward.NewXP
		response["new_level"] = reward.NewLevel
		response["did_level_up"] = reward.DidLevelUp
	}

	utils.Created(c, response)
}

// GetEvents lists the user's events, optionally filtered by a start/end range
// given as RFC 3339 query parameters.
func (h *EventsHandler) GetEvents(c *gin.Context) {
	userID := c.GetString("user_id")

	var start, end time.Time
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.BadRequest(c, "Invalid start date format")
			return
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.BadRequest(c, "Invalid end date format")
			return
		}
		end = parsed
	}

	events, err := h.service.GetUserEvents(c.Request.Context(), userID, start, end)
	if err != nil {
		utils.TrackError("events", "fetch_failed")
		utils.InternalError(c, "Failed to fetch events")
		return
	}

	utils.Success(c, gin.H{
		"events": dto.ToEventResponses(events),
		"count":  len(events),
	})
}

func (h *EventsHandler) UpdateEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	var updates model.Event
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), eventID, userID, &updates)
	if err == repository.ErrEventNotFound {
		utils.NotFound(c, "Event not found")
		return
	}
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"event": dto.ToEventResponse(event)})
}

func (h *EventsHandler) DeleteEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	err := h.service.DeleteEvent(c.Request.Context(), eventID, userID)
	if err == repository.ErrEventNotFound {
		utils.NotFound(c, "Event not found")
		return
	}
	if err != nil {
		utils.TrackError("events", "delete_failed")
		utils.InternalError(c, "Failed to delete event")
		return
	}

	utils.Success(c, gin.H{"message": "Event deleted"})
}
