package surface

import (
	"fmt"
	"image"

	"github.com/rook-computer/sierpinski/internal/palette"
)

// OpKind identifies a recorded primitive.
type OpKind int

const (
	OpBeginPath OpKind = iota
	OpMoveTo
	OpLineTo
	OpClosePath
	OpStroke
	OpSetFillStyle
	OpFill
	OpDrawImage
)

var opNames = [...]string{
	OpBeginPath:    "BeginPath",
	OpMoveTo:       "MoveTo",
	OpLineTo:       "LineTo",
	OpClosePath:    "ClosePath",
	OpStroke:       "Stroke",
	OpSetFillStyle: "SetFillStyle",
	OpFill:         "Fill",
	OpDrawImage:    "DrawImage",
}

func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opNames) {
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
	return opNames[k]
}

// Op is one recorded primitive. X and Y are set for MoveTo, LineTo and
// DrawImage, Color for SetFillStyle, Image for DrawImage.
type Op struct {
	Kind  OpKind
	X, Y  float64
	Color palette.Color
	Image image.Image
}

func (op Op) String() string {
	switch op.Kind {
	case OpMoveTo, OpLineTo, OpDrawImage:
		return fmt.Sprintf("%s(%g,%g)", op.Kind, op.X, op.Y)
	case OpSetFillStyle:
		return fmt.Sprintf("%s(%s)", op.Kind, op.Color)
	default:
		return op.Kind.String()
	}
}

// Recorder is a Surface that only remembers what it was asked to do.
type Recorder struct {
	Ops []Op
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) BeginPath()          { r.add(Op{Kind: OpBeginPath}) }
func (r *Recorder) MoveTo(x, y float64) { r.add(Op{Kind: OpMoveTo, X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64) { r.add(Op{Kind: OpLineTo, X: x, Y: y}) }
func (r *Recorder) ClosePath()          { r.add(Op{Kind: OpClosePath}) }

func (r *Recorder) Stroke() error {
	r.add(Op{Kind: OpStroke})
	return nil
}

func (r *Recorder) SetFillStyle(c palette.Color) { r.add(Op{Kind: OpSetFillStyle, Color: c}) }

func (r *Recorder) Fill() error {
	r.add(Op{Kind: OpFill})
	return nil
}

func (r *Recorder) DrawImage(img image.Image, x, y float64) error {
	r.add(Op{Kind: OpDrawImage, X: x, Y: y, Image: img})
	return nil
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Fills returns the fill colours in the order they were set.
func (r *Recorder) Fills() []palette.Color {
	var colors []palette.Color
	for _, op := range r.Ops {
		if op.Kind == OpSetFillStyle {
			colors = append(colors, op.Color)
		}
	}
	return colors
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) add(op Op) { r.Ops = append(r.Ops, op) }
