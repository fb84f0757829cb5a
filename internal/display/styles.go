package display

import "github.com/charmbracelet/lipgloss"

// ── Palette ──────────────────────────────────────────────────────

const (
	colRed      = lipgloss.Color("#b91c1c")
	colRedSoft  = lipgloss.Color("#f87171")
	colGreen    = lipgloss.Color("#16a34a")
	colPine     = lipgloss.Color("#166534")
	colWhite    = lipgloss.Color("#f8fafc")
	colMuted    = lipgloss.Color("#94a3b8")
	colDim      = lipgloss.Color("#475569")
	colCardEdge = lipgloss.Color("#64748b")
	colGold     = lipgloss.Color("#fde68a")
)

// cardWidth is the inner width of the central card.
const cardWidth = 56

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colCardEdge).
			Width(cardWidth).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Background(colRed).
			Foreground(colWhite).
			Bold(true).
			Width(cardWidth).
			Align(lipgloss.Center).
			Padding(1, 0, 0, 0)

	subtitleStyle = lipgloss.NewStyle().
			Background(colRed).
			Foreground(colWhite).
			Italic(true).
			Width(cardWidth).
			Align(lipgloss.Center).
			Padding(0, 0, 1, 0)

	promptStyle = lipgloss.NewStyle().
			Foreground(colWhite).
			Width(cardWidth - 10).
			Align(lipgloss.Center)

	buttonStyle = lipgloss.NewStyle().
			Background(colGreen).
			Foreground(colWhite).
			Bold(true).
			Padding(0, 3)

	labelStyle = lipgloss.NewStyle().
			Foreground(colRedSoft).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(colWhite).
			Bold(true).
			Padding(0, 2)

	historyLabelStyle = lipgloss.NewStyle().
				Foreground(colDim).
				Bold(true)

	recentChipStyle = lipgloss.NewStyle().
			Foreground(colMuted).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colDim).
			Padding(0, 1)

	olderChipStyle = recentChipStyle.
			Foreground(colDim)

	clockStyle = lipgloss.NewStyle().
			Foreground(colWhite).
			Bold(true)

	captionStyle = lipgloss.NewStyle().
			Foreground(colDim)

	nextLabelStyle = lipgloss.NewStyle().
			Foreground(colMuted)

	nextNameStyle = lipgloss.NewStyle().
			Foreground(colWhite).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Align(lipgloss.Center).
			Padding(1, 0, 0, 0)

	helpStyle = lipgloss.NewStyle().
			Foreground(colDim)

	treeStyle = lipgloss.NewStyle().
			Foreground(colGreen)

	// ── Background ──

	snowStyle = lipgloss.NewStyle().
			Foreground(colWhite)

	snowFaintStyle = lipgloss.NewStyle().
			Foreground(colDim)

	branchStyle = lipgloss.NewStyle().
			Foreground(colPine)

	baubleStyle = lipgloss.NewStyle().
			Foreground(colRedSoft)

	starStyle = lipgloss.NewStyle().
			Foreground(colGold)
)
