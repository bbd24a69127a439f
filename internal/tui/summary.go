package tui

import (
	"fmt"
	"strings"

	"github.com/patchcord/tsunamigen/internal/bank"
	"github.com/patchcord/tsunamigen/internal/config"
)

// RenderSummary renders the end-of-run panel shown by both the dashboard
// and plain-mode runs.
func RenderSummary(res *bank.Result, p *config.Profile) string {
	var b strings.Builder

	b.WriteString(successStyle.Render(IconDone + " Sample library generated"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Output"), res.OutputDir))
	b.WriteString(fmt.Sprintf("%s %d (0-%d)\n", labelStyle.Render("Banks"), res.Banks, res.Banks-1))
	b.WriteString(fmt.Sprintf("%s %d x %d Hz / %.2gs / %s\n",
		labelStyle.Render("Tracks"), res.FilesWritten, p.SampleRate, p.Duration, channelName(p)))
	b.WriteString(fmt.Sprintf("%s %s", labelStyle.Render("Elapsed"), formatDuration(res.Elapsed)))

	return summaryPanelStyle.Render(b.String())
}

func channelName(p *config.Profile) string {
	if p.Stereo {
		return "stereo"
	}
	return "mono"
}
