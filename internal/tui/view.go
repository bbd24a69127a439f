package tui

import (
	"fmt"
	"strings"
	"time"
)

const progressBarWidth = 40

// View renders the dashboard.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("tsunamigen"))
	b.WriteString(" ")
	b.WriteString(stateStyle(a.state).Render(a.state.String()))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Output"))
	b.WriteString(" ")
	b.WriteString(a.profile.Output)
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d Hz / %.2gs / gain %.2g",
		a.profile.SampleRate, a.profile.Duration, a.profile.MasterGain)))
	b.WriteString("\n\n")

	b.WriteString(a.renderOverallProgress())
	b.WriteString("\n\n")

	for _, bk := range a.gen.Banks() {
		b.WriteString(a.renderBankLine(bk.Index, bk.Waveform.Label()))
		b.WriteString("\n")
	}

	switch a.state {
	case StateComplete:
		b.WriteString("\n")
		b.WriteString(RenderSummary(a.result, a.profile))
		b.WriteString("\n")
	case StateError:
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s %v", IconFailed, a.err)))
		b.WriteString("\n")
	default:
		if a.currentFile != "" {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render(a.currentFile))
			b.WriteString("\n")
		}
		b.WriteString(footerStyle.Render("q to cancel"))
		b.WriteString("\n")
	}

	return b.String()
}

// renderOverallProgress renders the whole-run progress bar with counts and
// elapsed time.
func (a *App) renderOverallProgress() string {
	elapsed := time.Duration(0)
	if !a.startTime.IsZero() {
		elapsed = time.Since(a.startTime)
	}
	return fmt.Sprintf("%s %d/%d %s",
		renderProgressBar(progressBarWidth, a.written, a.total),
		a.written, a.total,
		mutedStyle.Render(formatDuration(elapsed)))
}

// renderBankLine renders one bank's status line.
func (a *App) renderBankLine(index int, label string) string {
	count := 0
	if index < len(a.perBank) {
		count = a.perBank[index]
	}

	icon := mutedStyle.Render(IconPending)
	switch {
	case count >= bankSize(a):
		icon = successStyle.Render(IconDone)
	case count > 0 || (a.state == StateRunning && index == a.currentBank):
		icon = stateRunningStyle.Render(IconInProgress)
	}

	return fmt.Sprintf("  %s Bank %d %-9s %3d/%d", icon, index, label, count, bankSize(a))
}

func bankSize(a *App) int {
	if len(a.perBank) == 0 {
		return 0
	}
	return a.total / len(a.perBank)
}

// renderProgressBar renders a block-glyph bar filled to written/total.
func renderProgressBar(width, written, total int) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if total > 0 {
		filled = width * written / total
	}
	if filled > width {
		filled = width
	}
	return progressBarFillStyle.Render(strings.Repeat("█", filled)) +
		progressBarEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// formatDuration formats a duration in a compact human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
