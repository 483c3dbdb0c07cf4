package utils

import "testing"

func TestCustomEmojiPattern(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		animated bool
		emoji    string
		id       string
	}{
		{"full form", "<:blobwave:123456789012345678>", false, "blobwave", "123456789012345678"},
		{"animated", "<a:party:987654321098765432>", true, "party", "987654321098765432"},
		{"no brackets", "blobwave:123456789012345678", false, "blobwave", "123456789012345678"},
		{"colon prefix", ":blobwave:123456789012345678", false, "blobwave", "123456789012345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := customEmojiRe.FindStringSubmatch(tt.input)
			if match == nil {
				t.Fatalf("no match for %q", tt.input)
			}
			if animated := match[1] == "a"; animated != tt.animated {
				t.Errorf("animated = %v, want %v", animated, tt.animated)
			}
			if match[2] != tt.emoji {
				t.Errorf("name = %q, want %q", match[2], tt.emoji)
			}
			if match[3] != tt.id {
				t.Errorf("id = %q, want %q", match[3], tt.id)
			}
		})
	}
}

func TestCustomEmojiPatternRejectsPlainText(t *testing.T) {
	for _, input := range []string{"blobwave", "👋", ":smile:", "name:123"} {
		if customEmojiRe.FindStringSubmatch(input) != nil {
			t.Errorf("unexpected match for %q", input)
		}
	}
}
