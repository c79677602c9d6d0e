package handler

import (
	"main/dto"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TasksHandler struct {
	service *usecase.TasksService
}

func NewTasksHandler(service *usecase.TasksService) *TasksHandler {
	return &TasksHandler{service: service}
}

// CreateTask persists the task. Creation earns no XP; completion does.
func (h *TasksHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("user_id")

	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		utils.BadRequest(c, "Title is required")
		return
	}
	task.UserID = userID
	// Completion status is never accepted at creation.
	task.Completed = false

	if err := h.service.CreateTask(c.Request.Context(), &task); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"task": dto.ToTaskResponse(&task)})
}

func (h *TasksHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("user_id")

	tasks, err := h.service.GetUserTasks(c.Request.Context(), userID)
	if err != nil {
		utils.TrackError("tasks", "fetch_failed")
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}

	utils.Success(c, gin.H{
		"tasks": dto.ToTaskResponses(tasks),
		"count": len(tasks),
	})
}

// UpdateTask applies the update; completing a task for the first time reports
// the XP it earned alongside the updated task.
func (h *TasksHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("user_id")
	taskID := c.Param("id")

	var updates model.Task
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	task, reward, err := h.service.UpdateTask(c.Request.Context(), taskID, userID, &updates)
	if err == repository.ErrTaskNotFound {
		utils.NotFound(c, "Task not found")
		return
	}
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	response := gin.H{"task": dto.ToTaskResponse(task)}
	if reward != nil {
		response["xp_gained"] = reward.XPGained
		response["new_xp"] = reward.NewXP
		response["new_level"] = reward.NewLevel
		response["did_level_up"] = reward.DidLevelUp
	}

	utils.Success(c, response)
}

func (h *TasksHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("user_id")
	taskID := c.Param("id")

	err := h.service.DeleteTask(c.Request.Context(), taskID, userID)
	if err == repository.ErrTaskNotFound {
		utils.NotFound(c, "Task not found")
		return
	}
	if err != nil {
		utils.TrackError("tasks", "delete_failed")
		utils.InternalError(c, "Failed to delete task")
		return
	}

	utils.Success(c, gin.H{"message": "Task deleted"})
}
