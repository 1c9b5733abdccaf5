package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	defaultPlotHeight   = 6
	minPlotWidth        = 10
	axisSeparator       = " │ "
	colorReset          = "\x1b[0m"
	plotColor           = "\x1b[33m"
	terminalWidthBackup = 80
)

// PlotWPM renders a braille line chart of WPM values scaled from 0 to the
// series maximum. A non-positive width uses the terminal width.
func PlotWPM(w io.Writer, values []float64, width, height int, forceColor bool) error {
	if len(values) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	_, maxVal := minMax(values)
	if maxVal <= 0 {
		maxVal = 1
	}
	labels := axisLabels(maxVal, height)
	labelWidth := 0
	for _, l := range labels {
		if n := utf8.RuneCountInString(l); n > labelWidth {
			labelWidth = n
		}
	}
	if width <= 0 {
		width = PlotWidthFor(terminalWidth(), labelWidth)
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	points := resample(values, width)
	cells := makeCells(height, width)
	dotRows := height * 4
	prevX, prevY := -1, -1
	for x, v := range points {
		py := valueToRow(v, 0, maxVal, dotRows)
		px := x * 2
		if prevX >= 0 {
			drawLine(prevX, prevY, px, py, func(dx, dy int) {
				setBrailleDot(cells, dx, dy)
			})
		} else {
			setBrailleDot(cells, px, py)
		}
		prevX, prevY = px, py
	}

	useColor := shouldUseColor(w, forceColor)
	for y := 0; y < height; y++ {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%*s%s", labelWidth, labels[y], axisSeparator))
		if useColor {
			row.WriteString(plotColor)
		}
		for x := 0; x < width; x++ {
			row.WriteRune(brailleFromMask(cells[y][x]))
		}
		if useColor {
			row.WriteString(colorReset)
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	return nil
}

// PlotWidthFor computes a plot width that fits next to the axis labels.
func PlotWidthFor(totalWidth, labelWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	plotWidth := totalWidth - labelWidth - utf8.RuneCountInString(axisSeparator)
	if plotWidth < minPlotWidth {
		plotWidth = minPlotWidth
	}
	return plotWidth
}

func axisLabels(maxVal float64, height int) []string {
	labels := make([]string, height)
	if height <= 0 {
		return labels
	}
	labels[0] = fmt.Sprintf("%.0f", maxVal)
	if height > 2 {
		labels[height/2] = fmt.Sprintf("%.0f", maxVal/2)
	}
	if height > 1 {
		labels[height-1] = "0"
	}
	return labels
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func makeCells(height, width int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	return cells
}

// resample stretches or averages values to exactly width points.
func resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	switch {
	case len(values) == 0 || width <= 0:
		return nil
	case len(values) == width:
		copy(out, values)
	case len(values) > width:
		for i := range out {
			start := i * len(values) / width
			end := (i + 1) * len(values) / width
			if end <= start {
				end = start + 1
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
	case len(values) == 1 || width == 1:
		for i := range out {
			out[i] = values[0]
		}
	default:
		for i := range out {
			pos := float64(i) * float64(len(values)-1) / float64(width-1)
			idx := int(math.Floor(pos))
			if idx >= len(values)-1 {
				out[i] = values[len(values)-1]
				continue
			}
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}

func valueToRow(v, minVal, maxVal float64, rows int) int {
	if rows <= 1 || maxVal <= minVal {
		return 0
	}
	pos := (v - minVal) / (maxVal - minVal)
	return clamp(int(math.Round((1-pos)*float64(rows-1))), 0, rows-1)
}

// drawLine walks a Bresenham line between two dot coordinates.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Braille cells are 2 dots wide and 4 dots tall.
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func setBrailleDot(cells [][]uint8, x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cy, cx := y/4, x/2
	if cy >= len(cells) || cx >= len(cells[cy]) {
		return
	}
	cells[cy][cx] |= brailleDots[y%4][x%2]
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}
