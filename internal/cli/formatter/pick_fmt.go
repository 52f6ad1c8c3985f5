package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/alexanderramin/wordpick/internal/service"
)

// FormatSelection renders a drawn word for the headless pick command.
func FormatSelection(sel domain.Selection, color domain.Color, reveal bool) string {
	var b strings.Builder
	b.WriteString(CategoryChip(sel.Category, color))
	if sel.AllPlay {
		b.WriteString("  " + AllPlayBadge())
	}
	b.WriteString("\n")

	if reveal {
		b.WriteString(Bold(sel.Word))
	} else {
		b.WriteString(Dim(HiddenWord) + "  " + Dim("(run with --reveal to show the word)"))
	}
	b.WriteString("\n")
	return b.String()
}

// FormatCountdown renders one line of the headless countdown.
func FormatCountdown(remaining, duration int) string {
	pct := 0.0
	if duration > 0 {
		pct = float64(remaining) / float64(duration)
	}
	return fmt.Sprintf("%s %s", TimerClock(domain.TimerRunning, remaining, duration), RenderProgress(pct, 20))
}

// FormatPoolSummary renders the category table for the pool command.
func FormatPoolSummary(sum service.PoolSummary) string {
	rows := make([][]string, 0, len(sum.Categories))
	for _, c := range sum.Categories {
		remaining := strconv.Itoa(c.Remaining)
		if c.Remaining == 0 {
			remaining = Dim("0")
		}
		rows = append(rows, []string{
			CategoryDot(c.ID, c.Color),
			string(c.Color),
			strconv.Itoa(c.Total),
			remaining,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"CATEGORY", "COLOR", "WORDS", "REMAINING"}, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s eligible of %s words, %s in the ledger\n",
		Bold(strconv.Itoa(sum.Eligible)), strconv.Itoa(sum.Total), strconv.Itoa(sum.Used)))
	return b.String()
}

// FormatLedger lists used words oldest first.
func FormatLedger(words []string) string {
	if len(words) == 0 {
		return Dim("No words used yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Used words (%d)", len(words))))
	b.WriteString("\n")
	width := len(strconv.Itoa(len(words)))
	for i, w := range words {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim(fmt.Sprintf("%*d", width, i+1)), w))
	}
	return b.String()
}

// FormatHistory renders pick records newest first.
func FormatHistory(picks []*domain.PickRecord, now time.Time) string {
	if len(picks) == 0 {
		return Dim("No picks recorded yet.") + "\n"
	}
	rows := make([][]string, 0, len(picks))
	for _, p := range picks {
		allPlay := ""
		if p.AllPlay {
			allPlay = StyleYellow.Render("★")
		}
		rows = append(rows, []string{
			HumanTimestampFrom(p.PickedAt, now),
			p.Word,
			p.Category,
			allPlay,
			TruncID(p.ID),
		})
	}
	return RenderTable([]string{"WHEN", "WORD", "CATEGORY", "ALL PLAY", "ID"}, rows)
}
