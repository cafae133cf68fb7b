package gauge

import (
	"fmt"
	"io"
)

// Segment colors.
const (
	CompletedColor  = "#8b5cf6"
	InProgressColor = "#facc15"
	PendingColor    = "#e5e7eb"
)

// RenderSVG writes g as a 200x120 SVG document. Segments with no positive
// percentage are omitted.
func RenderSVG(w io.Writer, g Gauge) error {
	if _, err := io.WriteString(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 120">`); err != nil {
		return err
	}

	segments := []struct {
		seg   Segment
		color string
	}{
		{g.Completed, CompletedColor},
		{g.InProgress, InProgressColor},
		{g.Pending, PendingColor},
	}

	for _, s := range segments {
		if !s.seg.Visible() {
			continue
		}
		_, err := fmt.Fprintf(w,
			`<path d="%s" fill="none" stroke="%s" stroke-width="%d" stroke-linecap="round"/>`,
			s.seg.Path, s.color, StrokeWidth,
		)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w,
		`<text x="100" y="95" text-anchor="middle" font-size="24" font-weight="bold">%d%%</text></svg>`,
		g.Label(),
	)
	return err
}
