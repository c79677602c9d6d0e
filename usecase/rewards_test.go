package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"
	"main/services"
)

type fakeXPStore struct {
	xp        int
	level     int
	incErr    error
	setLevels []int
}

func (f *fakeXPStore) IncrementXP(ctx context.Context, userID string, delta int) (*model.User, error) {
	if f.incErr != nil {
		return nil, f.incErr
	}
	f.xp += delta
	return &model.User{UserID: userID, XP: f.xp, Level: f.level}, nil
}

func (f *fakeXPStore) SetLevel(ctx context.Context, userID string, level int) error {
	f.setLevels = append(f.setLevels, level)
	f.level = level
	return nil
}

type fakeLedger struct {
	entries []*model.XPHistory
	err     error
}

func (f *fakeLedger) CreateEntry(ctx context.Context, entry *model.XPHistory) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func TestAwardNoteCreation(t *testing.T) {
	users := &fakeXPStore{xp: 40, level: 1}
	ledger := &fakeLedger{}
	svc := NewRewardsService(users, ledger)

	result, err := svc.Award(context.Background(), "u1", model.ActionCreateNote)
	if err != nil {
		t.Fatalf("Award: %v", err)
	}

	if result.XPGained != 2 {
		t.Errorf("XPGained = %d, want 2", result.XPGained)
	}
	if result.NewXP != 42 {
		t.Errorf("NewXP = %d, want 42", result.NewXP)
	}
	if result.NewLevel != 1 {
		t.Errorf("NewLevel = %d, want 1", result.NewLevel)
	}
	if result.DidLevelUp {
		t.Error("DidLevelUp = true, want false")
	}

	if len(ledger.entries) != 1 {
		t.Fatalf("ledger entries = %d, want 1", len(ledger.entries))
	}
	entry := ledger.entries[0]
	if entry.Action != model.ActionCreateNote || entry.XPGained != 2 || entry.UserID != "u1" {
		t.Errorf("unexpected ledger entry: %+v", entry)
	}
}

func TestAwardLevelUp(t *testing.T) {
	users := &fakeXPStore{xp: 97, level: 1}
	ledger := &fakeLedger{}
	svc := NewRewardsService(users, ledger)

	result, err := svc.Award(context.Background(), "u1", model.ActionCompleteTask)
	if err != nil {
		t.Fatalf("Award: %v", err)
	}

	if result.NewXP != 102 {
		t.Errorf("NewXP = %d, want 102", result.NewXP)
	}
	if result.NewLevel != 2 {
		t.Errorf("NewLevel = %d, want 2", result.NewLevel)
	}
	if !result.DidLevelUp {
		t.Error("DidLevelUp = false, want true")
	}
	if len(users.setLevels) != 1 || users.setLevels[0] != 2 {
		t.Errorf("cached level writes = %v, want [2]", users.setLevels)
	}
}

func TestAwardUnknownAction(t *testing.T) {
	svc := NewRewardsService(&fakeXPStore{}, &fakeLedger{})

	if _, err := svc.Award(context.Background(), "u1", model.ActionKind("jackpot")); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestAwardLedgerFailureIsNonFatal(t *testing.T) {
	users := &fakeXPStore{xp: 10, level: 1}
	ledger := &fakeLedger{err: errors.New("ledger down")}
	svc := NewRewardsService(users, ledger)

	result, err := svc.Award(context.Background(), "u1", model.ActionAddEvent)
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
	if result.NewXP != 11 {
		t.Errorf("NewXP = %d, want 11", result.NewXP)
	}
}

func TestAwardIncrementFailure(t *testing.T) {
	users := &fakeXPStore{incErr: errors.New("db down")}
	ledger := &fakeLedger{}
	svc := NewRewardsService(users, ledger)

	if _, err := svc.Award(context.Background(), "u1", model.ActionCreateNote); err == nil {
		t.Fatal("expected error when XP increment fails")
	}
	if len(ledger.entries) != 0 {
		t.Error("ledger entry appended despite failed increment")
	}
}

func TestAwardLoginSameDayGrantsNothing(t *testing.T) {
	users := &fakeXPStore{xp: 50, level: 1}
	ledger := &fakeLedger{}
	svc := NewRewardsService(users, ledger)

	result, err := svc.AwardLogin(context.Background(), "u1", services.StreakResult{DaysSince: 0, NewStreak: 3})
	if err != nil {
		t.Fatalf("AwardLogin: %v", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
	if users.xp != 50 {
		t.Errorf("xp = %d, want unchanged 50", users.xp)
	}
}

func TestAwardLoginWeeklyBonusAppendsTwoEntries(t *testing.T) {
	users := &fakeXPStore{xp: 0, level: 1}
	ledger := &fakeLedger{}
	svc := NewRewardsService(users, ledger)

	streak := services.StreakResult{DaysSince: 1, NewStreak: 7, BonusXP: 30, WeeklyBonus: true}
	result, err := svc.AwardLogin(context.Background(), "u1", streak)
	if err != nil {
		t.Fatalf("AwardLogin: %v", err)
	}

	if result.XPGained != 30 {
		t.Errorf("XPGained = %d, want 30", result.XPGained)
	}
	if result.NewXP != 30 {
		t.Errorf("NewXP = %d, want 30", result.NewXP)
	}

	if len(ledger.entries) != 2 {
		t.Fatalf("ledger entries = %d, want 2", len(ledger.entries))
	}
	if ledger.entries[0].Action != model.ActionDailyLogin || ledger.entries[0].XPGained != 10 {
		t.Errorf("first entry = %+v", ledger.entries[0])
	}
	if ledger.entries[1].Action != model.ActionWeeklyStreak || ledger.entries[1].XPGained != 20 {
		t.Errorf("second entry = %+v", ledger.entries[1])
	}
}

func TestAwardLoginDailyOnly(t *testing.T) {
	users := &fakeXPStore{xp: 5, level: 1}
	ledger := &fakeLedger{}
	svc := NewRewardsService(users, ledger)

	streak := services.StreakResult{DaysSince: 3, NewStreak: 1, BonusXP: 10}
	result, err := svc.AwardLogin(context.Background(), "u1", streak)
	if err != nil {
		t.Fatalf("AwardLogin: %v", err)
	}

	if result.XPGained != 10 {
		t.Errorf("XPGained = %d, want 10", result.XPGained)
	}
	if len(ledger.entries) != 1 {
		t.Fatalf("ledger entries = %d, want 1", len(ledger.entries))
	}
	if ledger.entries[0].Action != model.ActionDailyLogin {
		t.Errorf("entry action = %s, want daily_login", ledger.entries[0].Action)
	}
}
