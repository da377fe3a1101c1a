package geometry

import "strings"

// Curve selects the path shape used to connect two anchors.
type Curve string

// Supported curve kinds.
const (
	CurveBezier     Curve = "bezier"
	CurveSmoothStep Curve = "smoothstep"
)

// DefaultStepRadius is the corner radius used by SmoothStepPath when the
// caller does not configure one.
const DefaultStepRadius = 5.0

// ValidCurves is the set of supported curve kinds.
var ValidCurves = map[Curve]bool{
	CurveBezier:     true,
	CurveSmoothStep: true,
}

// BezierPath returns a cubic bezier SVG path from (sx, sy) to (tx, ty).
// The control points sit at the horizontal midpoint, each keeping its
// endpoint's vertical coordinate, producing a horizontal S-curve:
//
//	BezierPath(0, 0, 100, 50) == "M 0 0 C 50 0, 50 50, 100 50"
//
// When sy == ty the curve degenerates to a straight horizontal line.
func BezierPath(sx, sy, tx, ty float64) string {
	cx := sx + (tx-sx)/2

	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(fmtNum(sx))
	b.WriteByte(' ')
	b.WriteString(fmtNum(sy))
	b.WriteString(" C ")
	b.WriteString(fmtNum(cx))
	b.WriteByte(' ')
	b.WriteString(fmtNum(sy))
	b.WriteString(", ")
	b.WriteString(fmtNum(cx))
	b.WriteByte(' ')
	b.WriteString(fmtNum(ty))
	b.WriteString(", ")
	b.WriteString(fmtNum(tx))
	b.WriteByte(' ')
	b.WriteString(fmtNum(ty))
	return b.String()
}

// SmoothStepPath returns an orthogonal SVG path from (sx, sy) to (tx, ty)
// with rounded corners of the given radius: a horizontal run to the
// horizontal midpoint, a quarter turn, a vertical run to the target level, a
// mirrored quarter turn, and a horizontal run to the target. The vertical
// direction follows the endpoints: a target below the source turns downward,
// otherwise upward.
//
// The radius must be less than half the horizontal span to avoid
// self-intersecting geometry; that is the caller's responsibility and is not
// validated here.
func SmoothStepPath(sx, sy, tx, ty, radius float64) string {
	if sy == ty {
		// No vertical travel, so no corners to round.
		return "M " + fmtNum(sx) + " " + fmtNum(sy) + " H " + fmtNum(tx)
	}

	midX := sx + (tx-sx)/2
	dir := radius
	if ty < sy {
		dir = -radius
	}

	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(fmtNum(sx))
	b.WriteByte(' ')
	b.WriteString(fmtNum(sy))
	b.WriteString(" H ")
	b.WriteString(fmtNum(midX - radius))
	b.WriteString(" Q ")
	b.WriteString(fmtNum(midX))
	b.WriteByte(' ')
	b.WriteString(fmtNum(sy))
	b.WriteString(", ")
	b.WriteString(fmtNum(midX))
	b.WriteByte(' ')
	b.WriteString(fmtNum(sy + dir))
	b.WriteString(" V ")
	b.WriteString(fmtNum(ty - dir))
	b.WriteString(" Q ")
	b.WriteString(fmtNum(midX))
	b.WriteByte(' ')
	b.WriteString(fmtNum(ty))
	b.WriteString(", ")
	b.WriteString(fmtNum(midX + radius))
	b.WriteByte(' ')
	b.WriteString(fmtNum(ty))
	b.WriteString(" H ")
	b.WriteString(fmtNum(tx))
	return b.String()
}

// ArrowPath returns a closed triangular arrowhead path pointing at the
// target anchor (tx, ty). The tip sits at (tx - offset, ty); the base
// corners sit size units behind the tip, offset vertically by ±size/2:
//
//	ArrowPath(20, 20, 4, 0) == "M 20 20 L 16 18 L 16 22 Z"
func ArrowPath(tx, ty, size, offset float64) string {
	tipX := tx - offset

	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(fmtNum(tipX))
	b.WriteByte(' ')
	b.WriteString(fmtNum(ty))
	b.WriteString(" L ")
	b.WriteString(fmtNum(tipX - size))
	b.WriteByte(' ')
	b.WriteString(fmtNum(ty - size/2))
	b.WriteString(" L ")
	b.WriteString(fmtNum(tipX - size))
	b.WriteByte(' ')
	b.WriteString(fmtNum(ty + size/2))
	b.WriteString(" Z")
	return b.String()
}

// Path dispatches to the curve implementation for the given kind. Unknown
// kinds fall back to the bezier curve. The radius only applies to the
// smooth-step curve.
func Path(curve Curve, from, to Point, radius float64) string {
	switch curve {
	case CurveSmoothStep:
		if radius <= 0 {
			radius = DefaultStepRadius
		}
		return SmoothStepPath(from.X, from.Y, to.X, to.Y, radius)
	default:
		return BezierPath(from.X, from.Y, to.X, to.Y)
	}
}
