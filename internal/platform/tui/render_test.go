package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/happymatch/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawText(0, 0, "Score: 10")
	s.DrawTextWithColor(0, 1, "♥♥", core.ColorPink)
	s.SetCell(5, 1, core.Cell{Rune: '★', Color: core.ColorPurple, Reverse: true})
	s.DrawTextWithColor(0, 2, "Great Match!", core.ColorBrightYellow)

	out := RenderScreen(s)

	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Errorf("rendered %d lines, want 3", lines)
	}
	for _, want := range []string{"Score: 10", "♥♥", "★", "Great Match!"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	got := styleFor(styleKey{color: core.Color(200)}).Render("x")
	if !strings.Contains(got, "x") {
		t.Errorf("unknown color rendered %q", got)
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / core.DefaultTickRate},
		{-5, time.Second / core.DefaultTickRate},
	}

	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
