package theme

import (
	"strings"
	"testing"
)

func TestForAccuracy(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "good"},
		{80, "good"},
		{79, "fair"},
		{50, "fair"},
		{49, "poor"},
		{0, "poor"},
	}
	styles := map[string]string{
		"good": Good.Render("x"),
		"fair": Fair.Render("x"),
		"poor": Poor.Render("x"),
	}
	for _, tt := range tests {
		got := ForAccuracy(tt.pct).Render("x")
		if got != styles[tt.want] {
			t.Errorf("ForAccuracy(%d) rendered %q, want %s style %q", tt.pct, got, tt.want, styles[tt.want])
		}
	}
}

func TestRenderKeepsText(t *testing.T) {
	if got := Value.Render("42%"); !strings.Contains(got, "42%") {
		t.Errorf("Value.Render dropped text: %q", got)
	}
}
