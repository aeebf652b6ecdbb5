package chart

import (
	"fmt"
	"strings"
)

// MultiChart lays rendered charts out on a fixed grid inside one SVG
// document. Each cell renders independently and is embedded as a nested
// svg element.
type MultiChart struct {
	cols, rows int
	cellW      float64
	cellH      float64
	background string
	cells      []*Chart
}

// NewMultiChart creates a cols x rows grid of cellW x cellH cells.
func NewMultiChart(cols, rows int, cellW, cellH float64) (*MultiChart, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d: dimensions must be positive", cols, rows)
	}
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("invalid cell size %vx%v: dimensions must be positive", cellW, cellH)
	}
	return &MultiChart{
		cols:       cols,
		rows:       rows,
		cellW:      cellW,
		cellH:      cellH,
		background: DarkTheme().Background,
	}, nil
}

// SetBackground overrides the colour behind the cells.
func (m *MultiChart) SetBackground(color string) { m.background = color }

// Add appends a chart to the next free cell. Charts beyond the grid
// capacity are rejected.
func (m *MultiChart) Add(c *Chart) error {
	if len(m.cells) >= m.cols*m.rows {
		return fmt.Errorf("grid is full: %d cells", m.cols*m.rows)
	}
	c.cfg.Width = m.cellW
	c.cfg.Height = m.cellH
	m.cells = append(m.cells, c)
	return nil
}

// Render renders each cell and composes the grid, filling row by row.
func (m *MultiChart) Render() (string, error) {
	totalW := m.cellW * float64(m.cols)
	totalH := m.cellH * float64(m.rows)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		totalW, totalH, totalW, totalH)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%.0f" height="%.0f" fill="%s"/>`+"\n", totalW, totalH, m.background)

	for i, c := range m.cells {
		doc, err := c.Render()
		if err != nil {
			return "", fmt.Errorf("failed to render cell %d: %w", i, err)
		}
		col := i % m.cols
		row := i / m.cols
		fmt.Fprintf(&b, `<svg x="%.0f" y="%.0f" width="%.0f" height="%.0f">`+"\n",
			float64(col)*m.cellW, float64(row)*m.cellH, m.cellW, m.cellH)
		b.WriteString(stripXMLDecl(doc))
		b.WriteString("</svg>\n")
	}

	b.WriteString("</svg>\n")
	return b.String(), nil
}

// stripXMLDecl removes the XML declaration from a cell document so it can
// nest inside the outer svg.
func stripXMLDecl(doc string) string {
	if idx := strings.Index(doc, "?>"); idx >= 0 && strings.HasPrefix(doc, "<?xml") {
		return strings.TrimLeft(doc[idx+2:], "\n")
	}
	return doc
}
