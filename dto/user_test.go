package dto

import (
	"testing"

	"main/model"
)

// The response derives level, XP-to-next and avatar shape from XP so a stale
// stored level can never leak to clients.
func TestToUserResponseDerivesDisplayFields(t *testing.T) {
	user := &model.User{
		UserID:   "u1",
		Username: "quester",
		XP:       250,
		Level:    1, // stale on purpose
		Streak:   3,
	}

	resp := ToUserResponse(user)

	if resp.Level != 3 {
		t.Errorf("expected derived level 3, got %d", resp.Level)
	}
	if resp.XPToNextLevel != 50 {
		t.Errorf("expected 50 XP to next level, got %d", resp.XPToNextLevel)
	}
	if resp.AvatarShape != "dot" {
		t.Errorf("expected dot avatar at level 3, got %q", resp.AvatarShape)
	}
	if resp.Streak != 3 {
		t.Errorf("expected streak 3, got %d", resp.Streak)
	}
}

func TestToUserResponseAvatarProgression(t *testing.T) {
	cases := []struct {
		xp    int
		shape string
	}{
		{0, "dot"},
		{400, "circle"},
		{900, "triangle"},
		{1400, "square"},
		{1900, "hexagon"},
	}

	for _, tc := range cases {
		resp := ToUserResponse(&model.User{XP: tc.xp})
		if resp.AvatarShape != tc.shape {
			t.Errorf("xp %d: expected shape %q, got %q", tc.xp, tc.shape, resp.AvatarShape)
		}
	}
}
