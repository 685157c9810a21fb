package scene

import (
	"math"
	"strconv"
	"strings"
)

// PathBounds computes the bounding box of an SVG path data string from its
// command points. Control points are included, so the box may slightly
// overestimate curved edges; that is accurate enough for hit regions and
// label placement. Returns ok=false for empty or unreadable data.
func PathBounds(d string) (Rect, bool) {
	p := pathScanner{data: d}

	var (
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
		curX, curY float64
		startX     float64
		startY     float64
		seen       bool
	)

	include := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
		seen = true
	}

	for {
		cmd, ok := p.command()
		if !ok {
			break
		}
		rel := cmd >= 'a' && cmd <= 'z'
		upper := cmd
		if rel {
			upper = cmd - 'a' + 'A'
		}

		switch upper {
		case 'M', 'L', 'T':
			for {
				x, y, ok := p.pair()
				if !ok {
					break
				}
				if rel {
					x += curX
					y += curY
				}
				curX, curY = x, y
				if upper == 'M' {
					startX, startY = x, y
					// Implicit subsequent pairs are line-tos.
					upper = 'L'
				}
				include(curX, curY)
			}

		case 'H':
			for {
				x, ok := p.number()
				if !ok {
					break
				}
				if rel {
					x += curX
				}
				curX = x
				include(curX, curY)
			}

		case 'V':
			for {
				y, ok := p.number()
				if !ok {
					break
				}
				if rel {
					y += curY
				}
				curY = y
				include(curX, curY)
			}

		case 'C':
			for {
				pts, ok := p.pairs(3)
				if !ok {
					break
				}
				for i := range pts {
					if rel {
						pts[i][0] += curX
						pts[i][1] += curY
					}
					include(pts[i][0], pts[i][1])
				}
				curX, curY = pts[2][0], pts[2][1]
			}

		case 'S', 'Q':
			for {
				pts, ok := p.pairs(2)
				if !ok {
					break
				}
				for i := range pts {
					if rel {
						pts[i][0] += curX
						pts[i][1] += curY
					}
					include(pts[i][0], pts[i][1])
				}
				curX, curY = pts[1][0], pts[1][1]
			}

		case 'A':
			for {
				// rx ry rotation large-arc sweep x y
				if _, ok := p.number(); !ok {
					break
				}
				for i := 0; i < 4; i++ {
					p.number()
				}
				x, xok := p.number()
				y, yok := p.number()
				if !xok || !yok {
					break
				}
				if rel {
					x += curX
					y += curY
				}
				curX, curY = x, y
				include(curX, curY)
			}

		case 'Z':
			curX, curY = startX, startY

		default:
			// Unknown command: skip its numbers and carry on.
			for {
				if _, ok := p.number(); !ok {
					break
				}
			}
		}
	}

	if !seen {
		return Rect{}, false
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// pathScanner tokenizes SVG path data into commands and numbers.
type pathScanner struct {
	data string
	pos  int
}

func (p *pathScanner) skipSeparators() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' {
			p.pos++
			continue
		}
		break
	}
}

func isCommandByte(c byte) bool {
	return (c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') && c != 'e' && c != 'E'
}

func (p *pathScanner) command() (byte, bool) {
	p.skipSeparators()
	if p.pos >= len(p.data) {
		return 0, false
	}
	c := p.data[p.pos]
	if !isCommandByte(c) {
		return 0, false
	}
	p.pos++
	return c, true
}

func (p *pathScanner) number() (float64, bool) {
	p.skipSeparators()
	start := p.pos
	if p.pos < len(p.data) && (p.data[p.pos] == '-' || p.data[p.pos] == '+') {
		p.pos++
	}
	digits := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			digits = true
			p.pos++
			continue
		}
		if (c == 'e' || c == 'E') && digits {
			p.pos++
			if p.pos < len(p.data) && (p.data[p.pos] == '-' || p.data[p.pos] == '+') {
				p.pos++
			}
			continue
		}
		break
	}
	if !digits {
		p.pos = start
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(p.data[start:p.pos], "+"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (p *pathScanner) pair() (float64, float64, bool) {
	x, ok := p.number()
	if !ok {
		return 0, 0, false
	}
	y, ok := p.number()
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}

func (p *pathScanner) pairs(n int) ([][2]float64, bool) {
	out := make([][2]float64, 0, n)
	for i := 0; i < n; i++ {
		x, y, ok := p.pair()
		if !ok {
			return nil, false
		}
		out = append(out, [2]float64{x, y})
	}
	return out, true
}
