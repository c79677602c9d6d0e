package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"main/model"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
)

// AccountXPStore is the slice of the users repository the dispatcher needs.
type AccountXPStore interface {
	IncrementXP(ctx context.Context, userID string, delta int) (*model.User, error)
	SetLevel(ctx context.Context, userID string, level int) error
}

// LedgerStore appends immutable XP history entries.
type LedgerStore interface {
	CreateEntry(ctx context.Context, entry *model.XPHistory) error
}

type RewardResult struct {
	XPGained   int  `json:"xp_gained"`
	NewXP      int  `json:"new_xp"`
	NewLevel   int  `json:"new_level"`
	DidLevelUp bool `json:"did_level_up"`
}

// RewardsService applies the fixed reward table whenever a gamified action
// occurs: it bumps the account's XP atomically, refreshes the cached level
// and appends a ledger entry per action.
type RewardsService struct {
	Users   AccountXPStore
	Ledger  LedgerStore
	Rewards map[model.ActionKind]int
}

func NewRewardsService(users AccountXPStore, ledger LedgerStore) *RewardsService {
	return &RewardsService{
		Users:   users,
		Ledger:  ledger,
		Rewards: services.XPRewards,
	}
}

// Award grants the XP for one action. Callers invoke it only after the
// originating action has persisted, so a failure here never needs to undo
// anything. A ledger append failure after the XP landed is logged and
// swallowed; the XP itself is already durable.
func (s *RewardsService) Award(ctx context.Context, userID string, action model.ActionKind) (*RewardResult, error) {
	delta, ok := s.Rewards[action]
	if !ok {
		return nil, fmt.Errorf("unknown action kind: %s", action)
	}

	user, err := s.Users.IncrementXP(ctx, userID, delta)
	if err != nil {
		return nil, err
	}

	newLevel := services.CalculateLevel(user.XP)
	didLevelUp := newLevel > services.CalculateLevel(user.XP-delta)

	if newLevel != user.Level {
		if err := s.Users.SetLevel(ctx, userID, newLevel); err != nil {
			// Level is a display cache recomputed from XP on every read, so a
			// stale stored value is a warning, not a failure.
			log.Printf("Warning: failed to update cached level for user %s: %v", userID, err)
			utils.TrackError("rewards", "level_cache_update_failed")
		}
	}

	entry := &model.XPHistory{
		EntryID:   uuid.New().String(),
		UserID:    userID,
		Action:    action,
		XPGained:  delta,
		CreatedAt: time.Now(),
	}
	if err := s.Ledger.CreateEntry(ctx, entry); err != nil {
		log.Printf("Warning: failed to append XP ledger entry for user %s action %s: %v", userID, action, err)
		utils.TrackError("rewards", "ledger_append_failed")
	}

	utils.TrackXPAwarded(string(action), delta)

	return &RewardResult{
		XPGained:   delta,
		NewXP:      user.XP,
		NewLevel:   newLevel,
		DidLevelUp: didLevelUp,
	}, nil
}

// AwardLogin grants the login bonuses a streak evaluation produced: the daily
// reward, plus the weekly reward when the streak hit a multiple of seven.
// Each bonus gets its own ledger entry.
func (s *RewardsService) AwardLogin(ctx context.Context, userID string, streak services.StreakResult) (*RewardResult, error) {
	if streak.BonusXP == 0 {
		return nil, nil
	}

	result, err := s.Award(ctx, userID, model.ActionDailyLogin)
	if err != nil {
		return nil, err
	}

	if streak.WeeklyBonus {
		weekly, err := s.Award(ctx, userID, model.ActionWeeklyStreak)
		if err != nil {
			// The daily grant already landed; report what is known.
			log.Printf("Warning: weekly streak bonus failed for user %s: %v", userID, err)
			utils.TrackError("rewards", "weekly_bonus_failed")
			return result, nil
		}
		result = &RewardResult{
			XPGained:   result.XPGained + weekly.XPGained,
			NewXP:      weekly.NewXP,
			NewLevel:   weekly.NewLevel,
			DidLevelUp: result.DidLevelUp || weekly.DidLevelUp,
		}
	}

	return result, nil
}
