package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrNoPoints = errors.New("nothing to plot")

// RenderTrend draws the e1RM trend of one lift as a PNG. Dates go on the X
// axis as days since the first point.
func RenderTrend(points []wendler.TrendPoint, lift models.Lift, unit models.UnitSystem) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	first, err := time.Parse(models.DateLayout, points[0].Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", points[0].Date, err)
	}

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		d, err := time.Parse(models.DateLayout, pt.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", pt.Date, err)
		}
		xys[i].X = d.Sub(first).Hours() / 24
		xys[i].Y = pt.E1RM
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s estimated 1RM", lift.Name())
	p.X.Label.Text = fmt.Sprintf("Days since %s", points[0].Date)
	p.Y.Label.Text = fmt.Sprintf("e1RM (%s)", unit.Suffix())
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{R: 200, A: 255}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}

	p.Add(line, scatter)

	writerTo, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := writerTo.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
