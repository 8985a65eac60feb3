package summarize

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple sentences",
			text: "The vote passed. Markets reacted quickly. Officials declined to comment.",
			want: []string{
				"The vote passed.",
				"Markets reacted quickly.",
				"Officials declined to comment.",
			},
		},
		{
			name: "question and exclamation",
			text: "Will rates rise? Analysts think so!",
			want: []string{"Will rates rise?", "Analysts think so!"},
		},
		{
			name: "abbreviation does not split",
			text: "Dr. Smith testified on Tuesday. The hearing continues.",
			want: []string{
				"Dr. Smith testified on Tuesday.",
				"The hearing continues.",
			},
		},
		{
			name: "single letter initial does not split",
			text: "George W. Bush spoke at the event. Attendance was high.",
			want: []string{
				"George W. Bush spoke at the event.",
				"Attendance was high.",
			},
		},
		{
			name: "newlines treated as spaces",
			text: "First line here.\nSecond line here.",
			want: []string{"First line here.", "Second line here."},
		},
		{
			name: "trailing text without terminator kept",
			text: "Complete sentence. Trailing fragment",
			want: []string{"Complete sentence.", "Trailing fragment"},
		},
		{
			name: "decimal numbers do not split",
			text: "Growth hit 3.5 percent this quarter. Exports also rose.",
			want: []string{
				"Growth hit 3.5 percent this quarter.",
				"Exports also rose.",
			},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStripPunctuation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, world!", "Hello world"},
		{"no-punct here", "nopunct here"},
		{"(parenthetical)", "parenthetical"},
		{"", ""},
		{"100% sure.", "100 sure"},
	}

	for _, tt := range tests {
		if got := stripPunctuation(tt.in); got != tt.want {
			t.Errorf("stripPunctuation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
