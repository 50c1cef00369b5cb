package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"zipf/internal/domain"
)

var errNoRows = errors.New("no ranked words to plot")

var lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Plotter renders rank/frequency line charts as PNG files.
type Plotter struct {
	width    vg.Length
	height   vg.Length
	logScale bool
}

// NewPlotter creates a Plotter producing figures of the given size. When
// logScale is set the full-range chart uses logarithmic axes.
func NewPlotter(widthInches, heightInches float64, logScale bool) *Plotter {
	if widthInches <= 0 {
		widthInches = 12
	}
	if heightInches <= 0 {
		heightInches = 6
	}
	return &Plotter{
		width:    vg.Length(widthInches) * vg.Inch,
		height:   vg.Length(heightInches) * vg.Inch,
		logScale: logScale,
	}
}

// PlotFull draws every row.
func (p *Plotter) PlotFull(rows []domain.RankedWord, path string) error {
	if len(rows) == 0 {
		return errNoRows
	}

	pl, err := rankPlot("Word frequency by rank", rows, p.logScale)
	if err != nil {
		return err
	}
	if err := pl.Save(p.width, p.height, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// PlotTop draws one panel per limit side by side in a single figure.
func (p *Plotter) PlotTop(rows []domain.RankedWord, limits []int, path string) error {
	if len(rows) == 0 {
		return errNoRows
	}
	if len(limits) == 0 {
		return errors.New("no panel limits given")
	}

	plots := [][]*plot.Plot{make([]*plot.Plot, len(limits))}
	for i, n := range limits {
		pl, err := rankPlot(fmt.Sprintf("Top %d ranks", n), Truncate(rows, n), false)
		if err != nil {
			return err
		}
		plots[0][i] = pl
	}

	img := vgimg.New(p.width, p.height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(limits),
		PadX:      5 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}

	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return w.Close()
}

// Truncate returns the rows ranked n or better.
func Truncate(rows []domain.RankedWord, n int) []domain.RankedWord {
	if n < len(rows) {
		return rows[:n]
	}
	return rows
}

func rankPlot(title string, rows []domain.RankedWord, logScale bool) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "Rank"
	pl.Y.Label.Text = "Frequency"

	pts := make(plotter.XYs, len(rows))
	for i, r := range rows {
		pts[i].X = float64(r.Rank)
		pts[i].Y = float64(r.Count)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = lineColor

	pl.Add(plotter.NewGrid(), line)

	// Log axes need a non-degenerate positive range on both axes.
	if logScale && spans(rows) {
		pl.X.Scale = plot.LogScale{}
		pl.X.Tick.Marker = plot.LogTicks{Prec: -1}
		pl.Y.Scale = plot.LogScale{}
		pl.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	return pl, nil
}

func spans(rows []domain.RankedWord) bool {
	if len(rows) < 2 {
		return false
	}
	first, last := rows[0], rows[len(rows)-1]
	return last.Rank > first.Rank && first.Count > last.Count && last.Count > 0
}
