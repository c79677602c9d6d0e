package handler

import (
	"log"

	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// DeleteUserHandler removes the account and everything it owns: notes, tasks,
// ideas, events, the XP ledger and all sessions. The account document goes
// first so a partial cleanup can't leave a usable login behind.
func DeleteUserHandler(c *gin.Context,
	usersRepo *repository.UsersRepo,
	notesRepo *repository.NotesRepo,
	tasksRepo *repository.TasksRepo,
	ideasRepo *repository.IdeasRepo,
	eventsRepo *repository.EventsRepo,
	xpHistoryRepo *repository.XPHistoryRepo,
	sessionRepo *repository.SessionRepo,
) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	if err := usersRepo.DeleteUser(ctx, userID); err != nil {
		if err == repository.ErrUserNotFound {
			utils.NotFound(c, "User not found")
			return
		}
		utils.TrackError("account", "deletion_failed")
		utils.InternalError(c, "Failed to delete account")
		return
	}

	cleanups := []struct {
		name string
		fn   func() error
	}{
		{"notes", func() error { return notesRepo.DeleteUserNotes(ctx, userID) }},
		{"tasks", func() error { return tasksRepo.DeleteUserTasks(ctx, userID) }},
		{"ideas", func() error { return ideasRepo.DeleteUserIdeas(ctx, userID) }},
		{"events", func() error { return eventsRepo.DeleteUserEvents(ctx, userID) }},
		{"xp_history", func() error { return xpHistoryRepo.DeleteUserHistory(ctx, userID) }},
		{"sessions", func() error { return sessionRepo.EndAllSessions(ctx, userID) }},
	}
	for _, cleanup := range cleanups {
		if err := cleanup.fn(); err != nil {
			log.Printf("Warning: failed to clean up %s for deleted user %s: %v", cleanup.name, userID, err)
			utils.TrackError("account", "cleanup_failed")
		}
	}

	utils.Success(c, gin.H{"message": "Account deleted"})
}
