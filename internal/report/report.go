// Package report renders the task and focus history as a PDF.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/pomotask/internal/models"
	"github.com/akyairhashvil/pomotask/internal/pomodoro"
	"github.com/go-pdf/fpdf"
)

// Data is everything the report prints.
type Data struct {
	GeneratedAt time.Time
	Tasks       []pomodoro.TaskView
	History     []models.DayCount
	Target      int
}

// Collect gathers report data through the engine.
func Collect(ctx context.Context, engine *pomodoro.Engine) (Data, error) {
	view, err := engine.Refresh(ctx, models.FilterAll)
	if err != nil {
		return Data{}, fmt.Errorf("load tasks: %w", err)
	}
	history, err := engine.History(ctx)
	if err != nil {
		return Data{}, fmt.Errorf("load history: %w", err)
	}
	return Data{
		GeneratedAt: engine.Now(),
		Tasks:       view.Tasks,
		History:     history,
		Target:      view.Target,
	}, nil
}

// DefaultFilename names a report after its generation date.
func DefaultFilename(at time.Time) string {
	return fmt.Sprintf("report_%s.pdf", at.Format("2006-01-02"))
}

// WriteFile renders data to path, creating parent directories.
func WriteFile(data Data, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := Write(data, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Write renders data as a PDF to w.
func Write(data Data, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pomodoro report", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Pomodoro Report: %s", data.GeneratedAt.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Today's target: %d focus intervals", data.Target))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Tasks")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(data.Tasks) == 0 {
		pdf.Cell(0, 8, "  - No tasks.")
		pdf.Ln(8)
	}
	for _, line := range TaskLines(data.Tasks) {
		pdf.Cell(0, 8, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Focus intervals per day")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(data.History) == 0 {
		pdf.Cell(0, 8, "  - No focus intervals recorded.")
		pdf.Ln(8)
	}
	for _, d := range data.History {
		pdf.Cell(40, 8, d.Date)
		pdf.Cell(0, 8, fmt.Sprintf("%d  %s", d.Count, strings.Repeat("#", d.Count)))
		pdf.Ln(6)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// TaskLines formats one line per task: status, name, completed/estimate.
func TaskLines(tasks []pomodoro.TaskView) []string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		status := "[ ]"
		if t.Done {
			status = "[x]"
		}
		name := t.Name
		if strings.TrimSpace(name) == "" {
			name = "(unnamed)"
		}
		lines = append(lines, fmt.Sprintf("  %s %s  %d/%d", status, name, t.Completed, t.Estimate))
	}
	return lines
}
