package slug_test

import (
	"testing"

	"teammeet/shared/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases and replaces spaces",
			input: "Internal Tools",
			want:  "internal-tools",
		},
		{
			name:  "collapses runs of separators",
			input: "Q3  --  Planning!!",
			want:  "q3-planning",
		},
		{
			name:  "trims leading and trailing separators",
			input: "  /uploads/Project Phoenix/  ",
			want:  "uploads-project-phoenix",
		},
		{
			name:  "keeps digits",
			input: "Room 101",
			want:  "room-101",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only separators",
			input: "!!!",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slug.Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
