// SummaryWriter prints human-friendly, colorized conflict reports to STDOUT.
package report

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"uav-deconflict/internal/deconflict"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

var vehiclePalette = []string{colorYellow, colorBlue, colorMagenta, colorCyan}

// maxListedConflicts caps the per-report conflict table; the JSONL writers
// carry the full record set.
const maxListedConflicts = 5

// SummaryWriter renders reports for humans using ANSI colors.
type SummaryWriter struct {
	out           io.Writer
	width         int
	vehicleColors map[string]string
	colorIdx      int
}

// NewSummaryWriter creates a SummaryWriter writing to os.Stdout, sized to
// the terminal when attached to one.
func NewSummaryWriter() *SummaryWriter {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return &SummaryWriter{
		out:           os.Stdout,
		width:         width,
		vehicleColors: make(map[string]string),
	}
}

func (w *SummaryWriter) vehicleColor(id string) string {
	if c, ok := w.vehicleColors[id]; ok {
		return c
	}
	c := vehiclePalette[w.colorIdx%len(vehiclePalette)]
	w.vehicleColors[id] = c
	w.colorIdx++
	return c
}

// WriteReport prints one mission check result under the given title.
func (w *SummaryWriter) WriteReport(title, description string, rep *deconflict.Report) error {
	status := colorGreen + string(rep.Status) + colorReset
	if rep.Status == deconflict.StatusConflict {
		status = colorRed + string(rep.Status) + colorReset
	}
	fmt.Fprintf(w.out, "=== %s: %s\n", title, status)
	if description != "" {
		fmt.Fprintln(w.out, colorGray+wordwrap.String(description, w.width)+colorReset)
	}
	if rep.Clear() {
		return nil
	}

	fmt.Fprintf(w.out, "%d conflicting samples\n", len(rep.Conflicts))
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "TIME\tVEHICLES\tLOCATION\tDISTANCE\n")
	for i, c := range rep.Conflicts {
		if i == maxListedConflicts {
			fmt.Fprintf(tw, "...\t%d more\t\t\n", len(rep.Conflicts)-maxListedConflicts)
			break
		}
		pair := fmt.Sprintf("%s%s%s & %s%s%s",
			w.vehicleColor(c.VehicleA), c.VehicleA, colorReset,
			w.vehicleColor(c.VehicleB), c.VehicleB, colorReset)
		fmt.Fprintf(tw, "%s\t%s\t(%.1f, %.1f, %.1f)\t%.2f\n",
			c.Time.Format("15:04:05"), pair,
			c.Location.X, c.Location.Y, c.Location.Z, c.Distance)
	}
	return tw.Flush()
}
