package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/services"
)

// ExportTracker keeps the latest progress report of a favorites export.
type ExportTracker struct {
	current *services.ExportProgress
	width   int
}

func NewExportTracker(width int) *ExportTracker {
	return &ExportTracker{width: width}
}

func (p *ExportTracker) SetWidth(width int) {
	p.width = width
}

func (p *ExportTracker) Update(progress services.ExportProgress) {
	prog := progress // Copy
	p.current = &prog
}

func (p *ExportTracker) Clear() {
	p.current = nil
}

// HasActive reports whether an export is still running.
func (p *ExportTracker) HasActive() bool {
	if p.current == nil {
		return false
	}
	return p.current.Status != "complete" && p.current.Status != "error"
}

func (p *ExportTracker) View() string {
	if p.current == nil {
		return ""
	}
	progress := p.current

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Export"))
	b.WriteString("\n")

	statusText := progress.Status
	if progress.Total > 0 && progress.Status != "complete" {
		percentage := float64(progress.Current) / float64(progress.Total) * 100
		statusText = fmt.Sprintf("%s (%d/%d artworks - %.0f%%)",
			progress.Status, progress.Current, progress.Total, percentage)

		bar := renderProgressBar(progress.Current, progress.Total, max(10, p.width-4))
		b.WriteString(bar)
		b.WriteString("\n")
	}
	if progress.Title != "" && p.HasActive() {
		statusText += " " + progress.Title
	}

	b.WriteString(styles.StatusStyle(progress.Status).Render(statusText))
	b.WriteString("\n")

	if progress.Path != "" {
		b.WriteString(styles.TextStyle.Render(fmt.Sprintf("Saved to %s", progress.Path)))
		b.WriteString("\n")
	}
	if progress.Error != nil {
		b.WriteString(styles.FailedStyle.Render(fmt.Sprintf("Error: %s", progress.Error)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return styles.ProgressBarStyle.Render(bar)
}
