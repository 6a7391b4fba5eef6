package tui

import (
	"fmt"

	"github.com/akyairhashvil/pomotask/internal/config"
	"github.com/akyairhashvil/pomotask/internal/util"
	"github.com/charmbracelet/x/ansi"
)

// FormatCount renders completed against estimated focus intervals.
func FormatCount(completed, estimate int) string {
	return fmt.Sprintf("%d/%d", completed, estimate)
}

// FormatTarget is the daily target label.
func FormatTarget(n int) string {
	return fmt.Sprintf("Focus ×%d", n)
}

// TruncateName shortens s to width cells, keeping ANSI sequences intact.
func TruncateName(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

// nameWidth picks the task name column width for a terminal width.
func nameWidth(termWidth int) int {
	if termWidth <= 0 {
		return config.TargetNameWidth
	}
	return util.Clamp(termWidth-24, config.MinNameWidth, config.TargetNameWidth)
}
