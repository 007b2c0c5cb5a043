package canvas

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/oliverbestmann/glblit/glm"
	"github.com/oliverbestmann/glblit/pulse"
)

const (
	CircleRadius = 50
	StrokeWidth  = 9
)

var (
	StrokeColor = pulse.ColorWhite
	FillColor   = pulse.ColorLinearRGBA(0.2, 1.0, 0.7, 1.0)
)

// drawScene paints one circle at center: stroked first with the path kept,
// then filled, so the fill covers the inner half of the stroke.
func drawScene(dc *gg.Context, center glm.Vec2d) error {
	dc.Identity()
	dc.ClearPath()
	dc.Clear()

	cx, cy := center.XY()

	dc.SetLineWidth(StrokeWidth)
	dc.DrawCircle(cx, cy, CircleRadius)

	setColor(dc, StrokeColor)
	if err := dc.StrokePreserve(); err != nil {
		return fmt.Errorf("stroke circle: %w", err)
	}

	setColor(dc, FillColor)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill circle: %w", err)
	}

	return nil
}

func setColor(dc *gg.Context, color pulse.Color) {
	r, g, b, a := color.Components()
	dc.SetRGBA(float64(r), float64(g), float64(b), float64(a))
}
