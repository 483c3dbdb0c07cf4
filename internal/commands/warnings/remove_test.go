package warnings

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/wardenlabs/warden/pkg/cases"
)

func TestChoiceNameShortReason(t *testing.T) {
	rec := &cases.UserRecord{
		Record: cases.Record{CaseID: 7, Type: cases.TypeWarn, Reason: "spamming"},
	}

	got := choiceName(rec)
	if got != "#7 [warn] spamming" {
		t.Errorf("choiceName() = %q", got)
	}
}

func TestChoiceNameTruncatesLongReason(t *testing.T) {
	rec := &cases.UserRecord{
		Record: cases.Record{CaseID: 7, Type: cases.TypeWarn, Reason: strings.Repeat("x", 200)},
	}

	got := choiceName(rec)
	if n := utf8.RuneCountInString(got); n != 100 {
		t.Errorf("choiceName() length = %d runes, want 100", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("choiceName() = %q, want ... suffix", got)
	}
}

func TestChoiceNameKeepsMultiByteRunesIntact(t *testing.T) {
	// An emoji-only reason long enough to force truncation. A byte-offset
	// cut would split the final emoji and produce invalid UTF-8.
	rec := &cases.UserRecord{
		Record: cases.Record{CaseID: 7, Type: cases.TypeWarn, Reason: strings.Repeat("🔨", 120)},
	}

	got := choiceName(rec)
	if !utf8.ValidString(got) {
		t.Errorf("choiceName() produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n > 100 {
		t.Errorf("choiceName() length = %d runes, want at most 100", n)
	}
}
