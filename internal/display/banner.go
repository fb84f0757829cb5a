package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner returns the tree art centred in width columns; every line
// is padded to exactly width when the art fits. No scaling is applied;
// to change the art replace banner.txt.
func RenderBanner(width int) string {
	lines := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")
	if len(lines) == 0 {
		return ""
	}

	// Find the widest line.
	maxW := 0
	for _, l := range lines {
		if len(l) > maxW {
			maxW = len(l)
		}
	}

	left, right := 0, 0
	if width > maxW {
		left = (width - maxW) / 2
		right = width - maxW - left
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		// Pad every line to the art width so the tree keeps its shape.
		l += strings.Repeat(" ", maxW-len(l))
		out = append(out, strings.Repeat(" ", left)+treeStyle.Render(l)+strings.Repeat(" ", right))
	}
	return strings.Join(out, "\n")
}

// termSize returns the current terminal size, or 80x24 as fallback.
func termSize() (int, int) {
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return 80, 24
}
