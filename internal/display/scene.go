package display

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/noel/internal/ambience"
)

// cell is one character of the background.
type cell struct {
	r     rune
	style *lipgloss.Style
}

// Corner branch drawn in the top-left; mirrored for the top-right.
var branchArt = []string{
	`\~~~--.__`,
	` \  o  ~-.`,
	`  \~~.   o`,
	`   \  ~.`,
	`    \  o`,
}

// garlandPattern repeats along the bottom row.
const garlandPattern = "~~o~~*"

// scene is the background grid: snow behind, decor in front.
type scene struct {
	w, h  int
	cells [][]cell
}

func newScene(w, h int) *scene {
	s := &scene{w: w, h: h, cells: make([][]cell, h)}
	for y := range s.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		s.cells[y] = row
	}
	return s
}

func (s *scene) set(x, y int, r rune, st *lipgloss.Style) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.cells[y][x] = cell{r: r, style: st}
}

// drawSnow places the visible flakes of the field at now.
func (s *scene) drawSnow(field *ambience.Field, now time.Time) {
	if field == nil {
		return
	}
	for _, f := range field.Flakes(now, s.w, s.h) {
		st := &snowStyle
		if f.Faint {
			st = &snowFaintStyle
		}
		s.set(f.X, f.Y, f.Glyph, st)
	}
}

// drawDecor adds the corner branches and the bottom garland.
func (s *scene) drawDecor() {
	for y, line := range branchArt {
		runes := []rune(line)
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			st := &branchStyle
			if r == 'o' {
				st = &baubleStyle
			}
			s.set(x, y, r, st)
			s.set(s.w-1-x, y, mirror(r), st)
		}
	}

	if s.h < len(branchArt)+2 {
		return
	}
	pattern := []rune(garlandPattern)
	for x := 0; x < s.w; x++ {
		r := pattern[x%len(pattern)]
		st := &branchStyle
		switch r {
		case 'o':
			st = &baubleStyle
		case '*':
			st = &starStyle
		}
		s.set(x, s.h-1, r, st)
	}
}

// mirror flips a glyph for the right-hand branch.
func mirror(r rune) rune {
	switch r {
	case '\\':
		return '/'
	case '/':
		return '\\'
	default:
		return r
	}
}

// renderCells renders a run of background cells.
func renderCells(cells []cell) string {
	var b strings.Builder
	for _, c := range cells {
		if c.style == nil {
			b.WriteRune(c.r)
			continue
		}
		b.WriteString(c.style.Render(string(c.r)))
	}
	return b.String()
}

// composite draws fg centred over the scene. If fg does not fit, it is
// returned placed on a blank screen instead.
func (s *scene) composite(fg string) string {
	lines := strings.Split(fg, "\n")
	fw := lipgloss.Width(fg)
	fh := len(lines)
	if fw > s.w || fh > s.h {
		return lipgloss.Place(s.w, s.h, lipgloss.Center, lipgloss.Center, fg)
	}

	x0 := (s.w - fw) / 2
	y0 := (s.h - fh) / 2

	rows := make([]string, s.h)
	for y := 0; y < s.h; y++ {
		if y < y0 || y >= y0+fh {
			rows[y] = renderCells(s.cells[y])
			continue
		}
		line := lines[y-y0]
		if pad := fw - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows[y] = renderCells(s.cells[y][:x0]) + line + renderCells(s.cells[y][x0+fw:])
	}
	return strings.Join(rows, "\n")
}
