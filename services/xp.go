package services

import (
	"math"
	"time"

	"main/model"
)

// XPRewards is the fixed reward table mapping each gamified action to its XP
// value. It is injected into the rewards service rather than duplicated at
// call sites.
var XPRewards = map[model.ActionKind]int{
	model.ActionCompleteTask: 5,
	model.ActionCreateNote:   2,
	model.ActionAddEvent:     1,
	model.ActionDailyLogin:   10,
	model.ActionWeeklyStreak: 20,
}

// CalculateLevel derives the display level from total XP. Every 100 XP is one
// level, starting at level 1.
func CalculateLevel(xp int) int {
	return xp/100 + 1
}

// XPToNextLevel returns how much XP is still needed to reach the next level.
// Always in [1, 100] for non-negative XP.
func XPToNextLevel(xp int) int {
	return CalculateLevel(xp)*100 - xp
}

// AvatarShape maps a level to the avatar shape shown in the profile.
func AvatarShape(level int) string {
	switch {
	case level <= 4:
		return "dot"
	case level <= 9:
		return "circle"
	case level <= 14:
		return "triangle"
	case level <= 19:
		return "square"
	default:
		return "hexagon"
	}
}

type StreakResult struct {
	DaysSince   int
	NewStreak   int
	BonusXP     int
	WeeklyBonus bool
}

// EvaluateStreak classifies a login against the previous login date.
// Both times are normalized to midnight before comparison, so the time of day
// never affects the outcome. The day difference is taken as a magnitude: a
// last-login date in the future (clock skew) is treated like one in the past.
func EvaluateStreak(lastLogin, now time.Time, currentStreak int) StreakResult {
	days := daysBetween(lastLogin, now)

	res := StreakResult{DaysSince: days, NewStreak: currentStreak}

	switch {
	case days == 0:
		// Same-day login: no streak change, no bonus.
	case days == 1:
		res.NewStreak = currentStreak + 1
		res.BonusXP = XPRewards[model.ActionDailyLogin]
		if res.NewStreak%7 == 0 {
			res.BonusXP += XPRewards[model.ActionWeeklyStreak]
			res.WeeklyBonus = true
		}
	default:
		// Streak broken. A reset streak of 1 never pays the weekly bonus.
		res.NewStreak = 1
		res.BonusXP = XPRewards[model.ActionDailyLogin]
	}

	return res
}

func daysBetween(a, b time.Time) int {
	// Rounding absorbs DST transitions where a calendar day is 23 or 25 hours.
	diff := math.Round(midnight(b).Sub(midnight(a)).Hours() / 24)
	return int(math.Abs(diff))
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
