package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already exists")
)

type UserService struct {
	UsersRepo *repository.UsersRepo
}

func NewUserService(usersRepo *repository.UsersRepo) *UserService {
	return &UserService{UsersRepo: usersRepo}
}

// CreateUser registers a new account with hashed credentials and the
// starting gamification state (XP 0, level 1, streak 0).
func (svc *UserService) CreateUser(ctx context.Context, req *model.RegistrationRequest) (*model.User, error) {
	if _, err := svc.UsersRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if err != repository.ErrUserNotFound {
		return nil, err
	}

	if _, err := svc.UsersRepo.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if err != repository.ErrUserNotFound {
		return nil, err
	}

	hashedPassword, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:   uuid.New().String(),
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := svc.UsersRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ProcessLogin evaluates the login streak, persists the new streak state and
// returns the evaluation for the caller to award bonuses from.
func (svc *UserService) ProcessLogin(ctx context.Context, user *model.User, now time.Time) (services.StreakResult, error) {
	result := services.EvaluateStreak(user.LastLogin, now, user.Streak)

	switch {
	case result.DaysSince == 0:
		utils.TrackStreakOutcome("same_day")
	case result.WeeklyBonus:
		utils.TrackStreakOutcome("weekly_bonus")
	case result.DaysSince == 1:
		utils.TrackStreakOutcome("consecutive")
	default:
		utils.TrackStreakOutcome("broken")
	}

	if err := svc.UsersRepo.UpdateStreak(ctx, user.UserID, result.NewStreak, now); err != nil {
		return result, err
	}

	user.Streak = result.NewStreak
	user.LastLogin = now
	return result, nil
}

// ChangePassword verifies the old password before storing a new hash.
func (svc *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := svc.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	valid, err := services.VerifyPassword(user.Password, oldPassword)
	if err != nil {
		return err
	}
	if !valid {
		return errors.New("incorrect current password")
	}

	hashed, err := services.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return svc.UsersRepo.UpdatePassword(ctx, userID, hashed)
}
