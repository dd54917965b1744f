package profile_repo

import (
	"strings"
	"testing"
)

func TestAwardPrizeQueryIsConditional(t *testing.T) {
	sqlStr, args, err := awardPrizeQuery("user-1", "Dopamine")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, part := range []string{
		"UPDATE profiles SET signature = $1",
		"awarded_at = now()",
		"user_id = $2",
		"signature IS NULL",
	} {
		if !strings.Contains(sqlStr, part) {
			t.Fatalf("expected %q in %q", part, sqlStr)
		}
	}

	if len(args) != 2 || args[0] != "Dopamine" || args[1] != "user-1" {
		t.Fatalf("unexpected args %v", args)
	}
}
