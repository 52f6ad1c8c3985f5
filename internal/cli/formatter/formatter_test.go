package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/alexanderramin/wordpick/internal/service"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{60, "1:00"},
		{75, "1:15"},
		{120, "2:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Clock(tt.seconds))
		})
	}
}

func TestTimerClock_IdleShowsDuration(t *testing.T) {
	got := ansi.Strip(TimerClock(domain.TimerIdle, 0, 90))
	assert.Equal(t, "1:30", got)
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		width  int
		filled int
		empty  int
	}{
		{"full", 1, 10, 10, 0},
		{"half", 0.5, 10, 5, 5},
		{"empty", 0, 4, 0, 4},
		{"clamps above", 1.5, 4, 4, 0},
		{"clamps below", -1, 4, 0, 4},
		{"tiny width", 0.5, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(RenderProgress(tt.pct, tt.width))
			assert.Equal(t, "["+strings.Repeat(filledBlock, tt.filled)+strings.Repeat(emptyBlock, tt.empty)+"]", got)
		})
	}
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := ansi.Strip(RenderTable(
		[]string{"A", "B"},
		[][]string{{StyleRed.Render("long cell"), "x"}, {"s", "y"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "A          B", lines[0])
	assert.Equal(t, "long cell  x", lines[2])
	assert.Equal(t, "s          y", lines[3])
	assert.Empty(t, RenderTable(nil, nil))
}

func TestCategoryColor_UnknownFallsBackToDim(t *testing.T) {
	assert.Equal(t, ColorDim, CategoryColor("teal"))
	for c := range domain.ValidColors {
		assert.NotEqual(t, ColorDim, CategoryColor(c), "color %s", c)
	}
}

func TestFormatSelection(t *testing.T) {
	sel := domain.Selection{Category: "animals", Word: "cat", AllPlay: true}

	hidden := ansi.Strip(FormatSelection(sel, domain.ColorBlue, false))
	assert.Contains(t, hidden, "ANIMALS")
	assert.Contains(t, hidden, "ALL PLAY")
	assert.Contains(t, hidden, HiddenWord)
	assert.NotContains(t, hidden, "cat")

	shown := ansi.Strip(FormatSelection(domain.Selection{Category: "food", Word: "taco"}, domain.ColorRed, true))
	assert.Contains(t, shown, "taco")
	assert.NotContains(t, shown, "ALL PLAY")
}

func TestFormatPoolSummary(t *testing.T) {
	out := ansi.Strip(FormatPoolSummary(service.PoolSummary{
		Categories: []service.CategoryStats{
			{ID: "animals", Color: domain.ColorBlue, Total: 2, Remaining: 1},
			{ID: "food", Color: domain.ColorRed, Total: 3, Remaining: 0},
		},
		Total: 5, Eligible: 1, Used: 4,
	}))
	assert.Contains(t, out, "● animals")
	assert.Contains(t, out, "blue")
	assert.Contains(t, out, "1 eligible of 5 words, 4 in the ledger")
}

func TestFormatLedger(t *testing.T) {
	assert.Contains(t, ansi.Strip(FormatLedger(nil)), "No words used yet.")

	out := ansi.Strip(FormatLedger([]string{"owl", "cat"}))
	assert.Contains(t, out, "USED WORDS (2)")
	assert.Less(t, strings.Index(out, "1  owl"), strings.Index(out, "2  cat"))
}

func TestFormatHistory(t *testing.T) {
	now := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	out := ansi.Strip(FormatHistory([]*domain.PickRecord{
		{ID: "0123456789abcdef", Word: "ghost", Category: "random", AllPlay: true, PickedAt: now.Add(-5 * time.Minute)},
		{ID: "fedcba9876543210", Word: "cat", Category: "animals", PickedAt: now.Add(-2 * time.Hour)},
	}, now))

	assert.Contains(t, out, "5m ago")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "★")
	assert.Contains(t, ansi.Strip(FormatHistory(nil, now)), "No picks recorded yet.")
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
}
