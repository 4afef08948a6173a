package handler

import (
	"testing"
	"time"

	"github.com/zenova/gamehub-backend/internal/model"
)

func TestValidateRegistration(t *testing.T) {
	if errs := validateRegistration("player@example.com", "secret1", "Player1"); len(errs) != 0 {
		t.Fatalf("valid input rejected: %v", errs)
	}

	cases := []struct {
		name     string
		email    string
		password string
		display  string
		field    string
	}{
		{"bad email", "not-an-email", "secret1", "Player1", "email"},
		{"short password", "p@example.com", "abc", "Player1", "password"},
		{"short name", "p@example.com", "secret1", "ab", "name"},
		{"long name", "p@example.com", "secret1", "abcdefghijklmnopqrstu", "name"},
		{"non-alphanumeric name", "p@example.com", "secret1", "bad name!", "name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := validateRegistration(tc.email, tc.password, tc.display)
			if _, ok := errs[tc.field]; !ok {
				t.Fatalf("expected error on %q, got %v", tc.field, errs)
			}
		})
	}
}

func TestRegistrationRole(t *testing.T) {
	if got := registrationRole("boss@zplay.com"); got != model.RoleAdmin {
		t.Fatalf("zplay address role = %q, want ADMIN", got)
	}
	if got := registrationRole("Boss@ZPLAY.com"); got != model.RoleAdmin {
		t.Fatalf("case-insensitive domain check failed: %q", got)
	}
	if got := registrationRole("boss@example.com"); got != model.RoleUser {
		t.Fatalf("other domain role = %q, want USER", got)
	}
	if got := registrationRole("zplay.com@example.org"); got != model.RoleUser {
		t.Fatalf("domain must be a suffix match, got %q", got)
	}
}

func TestValidateGame(t *testing.T) {
	if errs := validateGame("Space Runner", "A fast runner.", "Collect coins, avoid walls.", "4.99"); len(errs) != 0 {
		t.Fatalf("valid game rejected: %v", errs)
	}
	if errs := validateGame("", "", "", ""); len(errs) == 0 || errs["name"] == "" {
		t.Fatalf("empty name accepted: %v", errs)
	}
	if errs := validateGame("OK", "", "", "free"); errs["price"] == "" {
		t.Fatalf("non-numeric price accepted: %v", errs)
	}
	if errs := validateGame("OK", "no <script> allowed", "", ""); errs["description"] == "" {
		t.Fatalf("description with markup accepted: %v", errs)
	}
}

func TestDecorateRewardEntries(t *testing.T) {
	weekStart := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC) // Monday
	today := time.Date(2025, time.June, 4, 12, 0, 0, 0, time.UTC)    // Wednesday noon

	entries := make([]model.RewardEntry, 0, 7)
	for day := 1; day <= 7; day++ {
		entries = append(entries, model.RewardEntry{
			UserID: 1, WeekStart: weekStart, DayOfWeek: day, Points: 50, Claimed: day == 1,
		})
	}

	got := decorate(entries, today)
	if len(got) != 7 {
		t.Fatalf("decorated %d entries, want 7", len(got))
	}
	for i, r := range got {
		day := i + 1
		if r.Points != 50 {
			t.Errorf("day %d points = %d", day, r.Points)
		}
		if wantClaimable := day <= 3; r.Claimable != wantClaimable {
			t.Errorf("day %d claimable = %v, want %v", day, r.Claimable, wantClaimable)
		}
		if wantClaimed := day == 1; r.Claimed != wantClaimed {
			t.Errorf("day %d claimed = %v, want %v", day, r.Claimed, wantClaimed)
		}
	}
	if got[0].DayName != "Monday" || got[6].DayName != "Sunday" {
		t.Fatalf("day names wrong: %q .. %q", got[0].DayName, got[6].DayName)
	}
}
