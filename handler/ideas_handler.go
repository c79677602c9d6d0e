package handler

import (
	"main/dto"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type IdeasHandler struct {
	service *usecase.IdeasService
}

func NewIdeasHandler(service *usecase.IdeasService) *IdeasHandler {
	return &IdeasHandler{service: service}
}

func (h *IdeasHandler) CreateIdea(c *gin.Context) {
	userID := c.GetString("user_id")

	var idea model.Idea
	if err := c.ShouldBindJSON(&idea); err != nil {
		utils.BadRequest(c, "Title and content are required")
		return
	}
	idea.UserID = userID

	if err := h.service.CreateIdea(c.Request.Context(), &idea); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"idea": dto.ToIdeaResponse(&idea)})
}

func (h *IdeasHandler) GetIdeas(c *gin.Context) {
	userID := c.GetString("user_id")

	ideas, err := h.service.GetUserIdeas(c.Request.Context(), userID)
	if err != nil {
		utils.TrackError("ideas", "fetch_failed")
		utils.InternalError(c, "Failed to fetch ideas")
		return
	}

	utils.Success(c, gin.H{
		"ideas": dto.ToIdeaResponses(ideas),
		"count": len(ideas),
	})
}

func (h *IdeasHandler) UpdateIdea(c *gin.Context) {
	userID := c.GetString("user_id")
	ideaID := c.Param("id")

	var updates model.Idea
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	idea, err := h.service.UpdateIdea(c.Request.Context(), ideaID, userID, &updates)
	if err == repository.ErrIdeaNotFound {
		utils.NotFound(c, "Idea not found")
		return
	}
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"idea": dto.ToIdeaResponse(idea)})
}

func (h *IdeasHandler) DeleteIdea(c *gin.Context) {
	userID := c.GetString("user_id")
	ideaID := c.Param("id")

	err := h.service.DeleteIdea(c.Request.Context(), ideaID, userID)
	if err == repository.ErrIdeaNotFound {
		utils.NotFound(c, "Idea not found")
		return
	}
	if err != nil {
		utils.TrackError("ideas", "delete_failed")
		utils.InternalError(c, "Failed to delete idea")
		return
	}

	utils.Success(c, gin.H{"message": "Idea deleted"})
}
