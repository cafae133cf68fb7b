// Package gauge computes the geometry of a semicircular progress gauge split
// into completed, in-progress, and pending segments, and renders it as SVG.
//
// Inputs are never validated. Negative counts or counts exceeding the total
// yield degenerate geometry but never an error or panic.
package gauge

import (
	"math"
	"strconv"
)

// Geometry shared by ArcPath and RenderSVG.
const (
	CenterX     = 100.0
	CenterY     = 100.0
	Radius      = 90.0
	StrokeWidth = 20
	TotalAngle  = 180.0
)

// Segment is one colored arc of the gauge. Angles are in degrees measured
// from the gauge's left end.
type Segment struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	Path       string  `json:"path"`
}

// Visible reports whether the segment is drawn.
func (s Segment) Visible() bool {
	return s.Percentage > 0
}

// Gauge is the computed state for a set of batch counts.
type Gauge struct {
	Total      int     `json:"total"`
	Completed  Segment `json:"completed"`
	InProgress Segment `json:"inProgress"`
	Pending    Segment `json:"pending"`
}

// Label is the completed percentage rounded half up to a whole number.
func (g Gauge) Label() int {
	return int(math.Floor(g.Completed.Percentage + 0.5))
}

// Compute derives the gauge from completed, pending, and total counts.
// In-progress is whatever remains of total. Percentages carry two decimal
// places and are all zero when total is zero.
func Compute(completed, pending, total int) Gauge {
	inProgress := total - (completed + pending)

	g := Gauge{
		Total:      total,
		Completed:  Segment{Count: completed, Percentage: percentage(completed, total)},
		InProgress: Segment{Count: inProgress, Percentage: percentage(inProgress, total)},
		Pending:    Segment{Count: pending, Percentage: percentage(pending, total)},
	}

	start := 0.0
	for _, s := range []*Segment{&g.Completed, &g.InProgress, &g.Pending} {
		s.StartAngle = start
		s.EndAngle = start + (s.Percentage/100)*TotalAngle
		s.Path = ArcPath(s.StartAngle, s.EndAngle)
		start = s.EndAngle
	}

	return g
}

// ArcPath returns the SVG path data for an arc between two angles on the
// gauge. Angle zero is the left end of the semicircle; angles grow clockwise.
func ArcPath(startAngle, endAngle float64) string {
	startRad := (180 + startAngle) * math.Pi / 180
	endRad := (180 + endAngle) * math.Pi / 180

	largeArc := 0
	if endAngle-startAngle > 180 {
		largeArc = 1
	}

	x1 := CenterX + Radius*math.Cos(startRad)
	y1 := CenterY + Radius*math.Sin(startRad)
	x2 := CenterX + Radius*math.Cos(endRad)
	y2 := CenterY + Radius*math.Sin(endRad)

	return "M " + num(x1) + ", " + num(y1) +
		" A " + num(Radius) + ", " + num(Radius) + ", 0, " + strconv.Itoa(largeArc) + ", 1, " +
		num(x2) + ", " + num(y2)
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
