package guard

import (
	"fmt"
	"testing"
	"time"
)

func TestLogRecordNewestFirst(t *testing.T) {
	l := NewLog()

	l.Record(Detection{UserID: "u1", Time: time.Now()})
	l.Record(Detection{UserID: "u2", Time: time.Now()})
	l.Record(Detection{UserID: "u3", Time: time.Now()})

	got := l.Recent(3)
	if len(got) != 3 {
		t.Fatalf("Recent(3) returned %d entries", len(got))
	}
	for i, want := range []string{"u3", "u2", "u1"} {
		if got[i].UserID != want {
			t.Errorf("entry %d: UserID = %q, want %q", i, got[i].UserID, want)
		}
	}
}

func TestLogEvictsOldestWhenFull(t *testing.T) {
	l := NewLog()

	for i := 0; i < logLimit+10; i++ {
		l.Record(Detection{UserID: fmt.Sprintf("u%d", i)})
	}

	got := l.Recent(logLimit + 10)
	if len(got) != logLimit {
		t.Fatalf("Recent() returned %d entries, want %d", len(got), logLimit)
	}
	if got[0].UserID != fmt.Sprintf("u%d", logLimit+9) {
		t.Errorf("newest entry = %q", got[0].UserID)
	}
	if got[len(got)-1].UserID != "u10" {
		t.Errorf("oldest surviving entry = %q, want u10", got[len(got)-1].UserID)
	}
}

func TestLogRecentClampsToAvailable(t *testing.T) {
	l := NewLog()

	if got := l.Recent(5); len(got) != 0 {
		t.Errorf("Recent() on empty log returned %d entries", len(got))
	}

	l.Record(Detection{UserID: "u1"})
	l.Record(Detection{UserID: "u2"})

	if got := l.Recent(10); len(got) != 2 {
		t.Errorf("Recent(10) returned %d entries, want 2", len(got))
	}
	if got := l.Recent(1); len(got) != 1 || got[0].UserID != "u2" {
		t.Errorf("Recent(1) = %v", got)
	}
}

func TestLogRecentReturnsCopy(t *testing.T) {
	l := NewLog()
	l.Record(Detection{UserID: "u1"})

	got := l.Recent(1)
	got[0].UserID = "mutated"

	if again := l.Recent(1); again[0].UserID != "u1" {
		t.Errorf("log entry changed through returned slice: %q", again[0].UserID)
	}
}
