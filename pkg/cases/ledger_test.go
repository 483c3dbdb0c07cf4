package cases

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "warnings.json")
	return New(path), path
}

func mustAdd(t *testing.T, l *Ledger, guildID, userID, actionType string) *Record {
	t.Helper()
	record, err := l.Add(guildID, userID, Entry{
		ModeratorID:  "mod-1",
		ModeratorTag: "Mod#0001",
		Type:         actionType,
	})
	if err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}
	return record
}

func TestAddAssignsSequentialCaseIDs(t *testing.T) {
	l, _ := newTestLedger(t)

	first := mustAdd(t, l, "g1", "u1", TypeWarn)
	second := mustAdd(t, l, "g1", "u2", TypeBan)
	third := mustAdd(t, l, "g2", "u1", TypeKick)

	if first.CaseID != 1 || second.CaseID != 2 || third.CaseID != 3 {
		t.Errorf("case IDs = %d, %d, %d, want 1, 2, 3", first.CaseID, second.CaseID, third.CaseID)
	}

	if l.Count("g1", "u1") != 1 {
		t.Errorf("Count(g1, u1) = %d, want 1", l.Count("g1", "u1"))
	}
}

func TestCaseIDsAreUniqueAcrossGuildsAndUsers(t *testing.T) {
	l, _ := newTestLedger(t)

	seen := make(map[int]bool)
	targets := []struct{ guild, user string }{
		{"g1", "u1"}, {"g1", "u2"}, {"g2", "u1"}, {"g1", "u1"}, {"g3", "u9"},
	}
	last := 0
	for _, target := range targets {
		record := mustAdd(t, l, target.guild, target.user, TypeWarn)
		if seen[record.CaseID] {
			t.Fatalf("case ID %d issued twice", record.CaseID)
		}
		if record.CaseID <= last {
			t.Fatalf("case ID %d not greater than previous %d", record.CaseID, last)
		}
		seen[record.CaseID] = true
		last = record.CaseID
	}
}

func TestAddDefaults(t *testing.T) {
	l, _ := newTestLedger(t)

	record, err := l.Add("g1", "u1", Entry{ModeratorID: "m1", ModeratorTag: "Mod#1"})
	if err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	if record.Reason != DefaultReason {
		t.Errorf("Reason = %q, want %q", record.Reason, DefaultReason)
	}
	if record.Type != TypeWarn {
		t.Errorf("Type = %q, want %q", record.Type, TypeWarn)
	}
	if record.Timestamp == "" {
		t.Error("Timestamp not set")
	}
}

func TestAddRejectsEmptyIdentifiers(t *testing.T) {
	l, _ := newTestLedger(t)

	if _, err := l.Add("", "u1", Entry{}); err == nil {
		t.Error("Add with empty guild ID should fail")
	}
	if _, err := l.Add("g1", "", Entry{}); err == nil {
		t.Error("Add with empty user ID should fail")
	}
}

func TestGetReturnsEmptySliceForUnknownUser(t *testing.T) {
	l, _ := newTestLedger(t)

	records := l.Get("g1", "nobody")
	if records == nil {
		t.Fatal("Get() returned nil, want empty slice")
	}
	if len(records) != 0 {
		t.Errorf("Get() returned %d records, want 0", len(records))
	}
}

func TestGetByCase(t *testing.T) {
	l, _ := newTestLedger(t)

	mustAdd(t, l, "g1", "u1", TypeWarn)
	record := mustAdd(t, l, "g1", "u2", TypeMute)

	found, ok := l.GetByCase("g1", record.CaseID)
	if !ok {
		t.Fatalf("GetByCase(%d) not found", record.CaseID)
	}
	if found.UserID != "u2" {
		t.Errorf("UserID = %q, want u2", found.UserID)
	}
	if found.Type != TypeMute {
		t.Errorf("Type = %q, want %q", found.Type, TypeMute)
	}

	if _, ok := l.GetByCase("g1", 999); ok {
		t.Error("GetByCase(999) should not be found")
	}
	if _, ok := l.GetByCase("g2", record.CaseID); ok {
		t.Error("GetByCase in the wrong guild should not be found")
	}
}

func TestRemoveByCase(t *testing.T) {
	l, _ := newTestLedger(t)

	record := mustAdd(t, l, "g1", "u1", TypeWarn)

	removed, err := l.RemoveByCase("g1", record.CaseID)
	if err != nil {
		t.Fatalf("RemoveByCase() returned error: %v", err)
	}
	if !removed {
		t.Fatal("RemoveByCase() = false, want true")
	}

	if got := l.Get("g1", "u1"); len(got) != 0 {
		t.Errorf("Get() after removal returned %d records, want 0", len(got))
	}
	if _, ok := l.GetByCase("g1", record.CaseID); ok {
		t.Error("removed case still found via GetByCase")
	}

	// Removing again is a no-op, not an error.
	removed, err = l.RemoveByCase("g1", record.CaseID)
	if err != nil {
		t.Fatalf("second RemoveByCase() returned error: %v", err)
	}
	if removed {
		t.Error("second RemoveByCase() = true, want false")
	}
}

func TestRemoveLastCasePrunesUserEntry(t *testing.T) {
	l, path := newTestLedger(t)

	record := mustAdd(t, l, "g1", "u1", TypeWarn)
	if _, err := l.RemoveByCase("g1", record.CaseID); err != nil {
		t.Fatalf("RemoveByCase() returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read store: %v", err)
	}
	if strings.Contains(string(data), `"u1"`) {
		t.Errorf("store still contains the pruned user entry: %s", data)
	}

	stats := l.GetStats("g1")
	if stats.UsersWarned != 0 {
		t.Errorf("UsersWarned = %d, want 0", stats.UsersWarned)
	}
}

func TestClear(t *testing.T) {
	l, _ := newTestLedger(t)

	mustAdd(t, l, "g1", "u1", TypeWarn)
	mustAdd(t, l, "g1", "u1", TypeMute)
	mustAdd(t, l, "g1", "u2", TypeBan)

	cleared, err := l.Clear("g1", "u1")
	if err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	if cleared != 2 {
		t.Errorf("Clear() = %d, want 2", cleared)
	}

	if cleared, err := l.Clear("g1", "u1"); err != nil || cleared != 0 {
		t.Errorf("second Clear() = %d, %v, want 0, nil", cleared, err)
	}

	stats := l.GetStats("g1")
	if stats.TotalWarnings != 1 || stats.UsersWarned != 1 {
		t.Errorf("stats after clear = %+v, want 1 warning for 1 user", stats)
	}
}

func TestGetStats(t *testing.T) {
	l, _ := newTestLedger(t)

	empty := l.GetStats("g1")
	if empty.TotalWarnings != 0 || empty.UsersWarned != 0 || len(empty.ByType) != 0 {
		t.Errorf("stats for empty guild = %+v, want zeroes", empty)
	}

	mustAdd(t, l, "g1", "u1", TypeWarn)
	mustAdd(t, l, "g1", "u1", TypeWarn)
	mustAdd(t, l, "g1", "u2", TypeBan)
	mustAdd(t, l, "g2", "u3", TypeKick)

	stats := l.GetStats("g1")
	if stats.TotalWarnings != 3 {
		t.Errorf("TotalWarnings = %d, want 3", stats.TotalWarnings)
	}
	if stats.UsersWarned != 2 {
		t.Errorf("UsersWarned = %d, want 2", stats.UsersWarned)
	}
	if stats.ByType[TypeWarn] != 2 || stats.ByType[TypeBan] != 1 {
		t.Errorf("ByType = %v, want 2 warns and 1 ban", stats.ByType)
	}

	// Totals match the per-user counts.
	sum := l.Count("g1", "u1") + l.Count("g1", "u2")
	if sum != stats.TotalWarnings {
		t.Errorf("sum of counts = %d, want %d", sum, stats.TotalWarnings)
	}
}

func TestGetRecent(t *testing.T) {
	l, _ := newTestLedger(t)

	mustAdd(t, l, "g1", "u1", TypeWarn)
	mustAdd(t, l, "g1", "u2", TypeMute)
	mustAdd(t, l, "g1", "u1", TypeBan)

	recent := l.GetRecent("g1", 2)
	if len(recent) != 2 {
		t.Fatalf("GetRecent(2) returned %d records, want 2", len(recent))
	}
	// Entries share a timestamp granularity of one second, so ordering falls
	// back to case IDs: newest first.
	if recent[0].CaseID < recent[1].CaseID {
		t.Errorf("GetRecent not newest-first: %d before %d", recent[0].CaseID, recent[1].CaseID)
	}
	if recent[0].CaseID != 3 {
		t.Errorf("most recent case = %d, want 3", recent[0].CaseID)
	}

	if got := l.GetRecent("g9", 5); len(got) != 0 {
		t.Errorf("GetRecent for unknown guild returned %d records, want 0", len(got))
	}
}

func TestRoundTripReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.json")
	l := New(path)

	mustAdd(t, l, "g1", "u1", TypeWarn)
	mustAdd(t, l, "g1", "u2", TypeBan)
	mustAdd(t, l, "g2", "u1", TypeKick)

	reloaded := New(path)

	if reloaded.Count("g1", "u1") != 1 || reloaded.Count("g1", "u2") != 1 {
		t.Error("per-user counts changed across reload")
	}
	if reloaded.CaseCounter() != 3 {
		t.Errorf("CaseCounter() after reload = %d, want 3", reloaded.CaseCounter())
	}

	before := l.GetStats("g1")
	after := reloaded.GetStats("g1")
	if before.TotalWarnings != after.TotalWarnings || before.UsersWarned != after.UsersWarned {
		t.Errorf("stats changed across reload: %+v vs %+v", before, after)
	}

	// The counter resumes where it left off.
	record, err := reloaded.Add("g1", "u3", Entry{ModeratorID: "m1", ModeratorTag: "Mod#1"})
	if err != nil {
		t.Fatalf("Add() after reload returned error: %v", err)
	}
	if record.CaseID != 4 {
		t.Errorf("case ID after reload = %d, want 4", record.CaseID)
	}
}

func TestLoadResumesCounterFromStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.json")
	store := `{
  "warnings": {
    "g1": {
      "u1": [
        {"caseId": 1, "moderatorId": "m1", "moderatorTag": "Mod#1", "reason": "spam", "timestamp": "2026-01-02T15:04:05Z", "type": "warn"},
        {"caseId": 3, "moderatorId": "m1", "moderatorTag": "Mod#1", "reason": "spam again", "timestamp": "2026-01-03T15:04:05Z", "type": "mute"}
      ]
    },
    "g2": {
      "u2": [
        {"caseId": 5, "moderatorId": "m2", "moderatorTag": "Mod#2", "reason": "raid", "timestamp": "2026-01-04T15:04:05Z", "type": "ban"}
      ]
    }
  },
  "caseCounter": 5
}`
	if err := os.WriteFile(path, []byte(store), 0644); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	l := New(path)
	if l.Count("g1", "u1") != 2 {
		t.Errorf("Count(g1, u1) = %d, want 2", l.Count("g1", "u1"))
	}

	record := mustAdd(t, l, "g1", "u1", TypeWarn)
	if record.CaseID != 6 {
		t.Errorf("next case ID = %d, want 6", record.CaseID)
	}
}

func TestCorruptStoreStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	l := New(path)
	if l.CaseCounter() != 0 {
		t.Errorf("CaseCounter() = %d, want 0", l.CaseCounter())
	}

	record := mustAdd(t, l, "g1", "u1", TypeWarn)
	if record.CaseID != 1 {
		t.Errorf("first case ID = %d, want 1", record.CaseID)
	}
}

func TestAddRollsBackWhenSaveFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warnings.json")
	l := New(path)
	mustAdd(t, l, "g1", "u1", TypeWarn)

	// Point the ledger at an unwritable location to force save failures.
	l.path = filepath.Join(dir, "missing", "sub", "warnings.json")
	if err := os.WriteFile(filepath.Join(dir, "missing"), []byte{}, 0644); err != nil {
		t.Fatalf("failed to block data directory: %v", err)
	}

	if _, err := l.Add("g1", "u1", Entry{ModeratorID: "m1", ModeratorTag: "Mod#1"}); err == nil {
		t.Fatal("Add() should fail when the store cannot be written")
	}

	if got := l.Count("g1", "u1"); got != 1 {
		t.Errorf("Count() after failed Add = %d, want 1 (rolled back)", got)
	}

	// The failed add still burned its case ID.
	l.path = path
	record := mustAdd(t, l, "g1", "u1", TypeWarn)
	if record.CaseID != 3 {
		t.Errorf("case ID after failed Add = %d, want 3", record.CaseID)
	}
}

func TestRemoveByCaseRollsBackWhenSaveFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warnings.json")
	l := New(path)
	mustAdd(t, l, "g1", "u1", TypeWarn)
	mustAdd(t, l, "g1", "u1", TypeMute)

	// Point the ledger at an unwritable location to force save failures.
	l.path = filepath.Join(dir, "missing", "sub", "warnings.json")
	if err := os.WriteFile(filepath.Join(dir, "missing"), []byte{}, 0644); err != nil {
		t.Fatalf("failed to block data directory: %v", err)
	}

	removed, err := l.RemoveByCase("g1", 1)
	if err == nil {
		t.Fatal("RemoveByCase() should fail when the store cannot be written")
	}
	if removed {
		t.Error("RemoveByCase() reported success despite the save failure")
	}

	if got := l.Count("g1", "u1"); got != 2 {
		t.Errorf("Count() after failed RemoveByCase = %d, want 2 (restored)", got)
	}

	// The record must come back at its original position.
	records := l.Get("g1", "u1")
	if records[0].CaseID != 1 || records[1].CaseID != 2 {
		t.Errorf("case IDs after restore = %d, %d, want 1, 2", records[0].CaseID, records[1].CaseID)
	}

	l.path = path
	removed, err = l.RemoveByCase("g1", 1)
	if err != nil || !removed {
		t.Fatalf("RemoveByCase() after unblocking = %t, %v, want true, nil", removed, err)
	}
}

func TestClearRollsBackWhenSaveFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warnings.json")
	l := New(path)
	mustAdd(t, l, "g1", "u1", TypeWarn)
	mustAdd(t, l, "g1", "u1", TypeKick)

	l.path = filepath.Join(dir, "missing", "sub", "warnings.json")
	if err := os.WriteFile(filepath.Join(dir, "missing"), []byte{}, 0644); err != nil {
		t.Fatalf("failed to block data directory: %v", err)
	}

	cleared, err := l.Clear("g1", "u1")
	if err == nil {
		t.Fatal("Clear() should fail when the store cannot be written")
	}
	if cleared != 0 {
		t.Errorf("Clear() reported %d removals despite the save failure", cleared)
	}

	if got := l.Count("g1", "u1"); got != 2 {
		t.Errorf("Count() after failed Clear = %d, want 2 (restored)", got)
	}

	l.path = path
	cleared, err = l.Clear("g1", "u1")
	if err != nil || cleared != 2 {
		t.Fatalf("Clear() after unblocking = %d, %v, want 2, nil", cleared, err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	l, _ := newTestLedger(t)

	mustAdd(t, l, "g1", "u1", TypeWarn)
	records := l.Get("g1", "u1")
	records[0].Reason = "tampered"

	if l.Get("g1", "u1")[0].Reason == "tampered" {
		t.Error("Get() exposed internal ledger state")
	}
}
