package topic

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		topic   Topic
		pattern Topic
		want    bool
	}{
		{"plot.cursor.moved", "plot.cursor.moved", true},
		{"plot.cursor.moved", "plot.cursor.*", true},
		{"plot.cursor.moved", "plot.*", false},
		{"plot.cursor.moved", "plot.**", true},
		{"plot.cursor.moved", "**", true},
		{"plot.zoom.changed", "plot.zoom.*", true},
		{"plot.zoom.changed", "plot.range.*", false},
		{"plot", "plot.**", true},
		{"other.cursor.moved", "plot.**", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.topic)+"~"+string(tt.pattern), func(t *testing.T) {
			if got := tt.topic.Matches(tt.pattern); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.topic, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestHasPrefix(t *testing.T) {
	if !Topic("plot.cursor.moved").HasPrefix("plot.cursor") {
		t.Error("segment prefix not matched")
	}
	if Topic("plot.cursorline").HasPrefix("plot.cursor") {
		t.Error("partial segment matched as prefix")
	}
	if !Topic("plot").HasPrefix("plot") {
		t.Error("exact topic not matched as prefix")
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		topic Topic
		want  bool
	}{
		{"plot.cursor.moved", true},
		{"plot", true},
		{"", false},
		{".plot", false},
		{"plot.", false},
		{"plot..cursor", false},
	}

	for _, tt := range tests {
		if got := tt.topic.IsValid(); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.topic, got, tt.want)
		}
	}
}
