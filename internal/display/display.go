// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type renders the rotation card over an animated snow
// background. It only reads snapshots from the countdown and, on user
// request, invokes its start action.
package display

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/noel/internal/ambience"
	"github.com/hammamikhairi/noel/internal/domain"
	"github.com/hammamikhairi/noel/internal/logger"
	"github.com/hammamikhairi/noel/internal/rotation"
)

// frameInterval is how often the screen is redrawn.
const frameInterval = 100 * time.Millisecond

// barWidth is the width of the countdown bar.
const barWidth = 40

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking).
type UI struct {
	countdown domain.Countdown
	field     *ambience.Field
	title     string
	log       *logger.Logger
}

// NewUI creates the display. Call Run() to start.
func NewUI(countdown domain.Countdown, field *ambience.Field, title string, log *logger.Logger) *UI {
	return &UI{
		countdown: countdown,
		field:     field,
		title:     title,
		log:       log,
	}
}

// Run starts the Bubble Tea event loop. Blocks until the user quits or
// ctx is cancelled.
func (u *UI) Run(ctx context.Context) error {
	m := newModel(ctx, u.countdown, u.field, u.title, time.Now())
	m.width, m.height = termSize()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	u.log.Debug("display closed")
	return err
}

// ── Key bindings ─────────────────────────────────────────────────

type keyMap struct {
	Start key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " ", "s"),
			key.WithHelp("entrée", "lancer"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quitter"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Start, k.Quit} }

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	ctx       context.Context
	countdown domain.Countdown
	field     *ambience.Field
	title     string

	keys keyMap
	help help.Model
	bar  progress.Model

	snap      domain.Snapshot
	now       time.Time
	width     int
	height    int
	lastTitle string
}

// Messages.
type frameMsg time.Time

func newModel(ctx context.Context, countdown domain.Countdown, field *ambience.Field, title string, now time.Time) model {
	keys := newKeyMap()
	snap := countdown.Snapshot()
	keys.Start.SetEnabled(!snap.Active)

	return model{
		ctx:       ctx,
		countdown: countdown,
		field:     field,
		title:     title,
		keys:      keys,
		help:      help.New(),
		bar: progress.New(
			progress.WithSolidFill(string(colRed)),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
		),
		snap: snap,
		now:  now,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), tea.SetWindowTitle(m.title))
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start):
			m.countdown.Start(m.ctx)
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.now = time.Time(msg)
		m.refresh()
		cmds := []tea.Cmd{frameCmd()}
		if t := m.titleStr(); t != m.lastTitle {
			m.lastTitle = t
			cmds = append(cmds, tea.SetWindowTitle(t))
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

// refresh pulls a new snapshot from the countdown.
func (m *model) refresh() {
	m.snap = m.countdown.Snapshot()
	m.keys.Start.SetEnabled(!m.snap.Active)
}

func (m model) titleStr() string {
	if !m.snap.Active {
		return m.title
	}
	return fmt.Sprintf("%s · %s (%s)", m.title, m.snap.Current(), rotation.FormatTime(m.snap.TimeLeft))
}

func (m model) View() string {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}

	fg := lipgloss.JoinVertical(lipgloss.Center,
		m.renderCard(),
		helpStyle.Render(m.help.View(m.keys)),
	)

	sc := newScene(w, h)
	sc.drawSnow(m.field, m.now)
	sc.drawDecor()
	return sc.composite(fg)
}

func (m model) renderCard() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		headerStyle.Render("🎁 "+m.title+" 🎄"),
		subtitleStyle.Render("Un nouveau nom toutes les "+durationPhrase(m.snap.Duration)),
	)

	var body string
	if m.snap.Active {
		body = m.renderActive()
	} else {
		body = m.renderIdle()
	}

	footer := footerStyle.Render("🕯  🍪  🥛  ⭐")

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, header, "", body, footer))
}

func (m model) renderIdle() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		RenderBanner(cardWidth),
		"",
		promptStyle.Render("Prêt pour la distribution ? Appuyez sur le bouton pour lancer le décompte magique !"),
		"",
		buttonStyle.Render("Lancer le Temps de Noël !"),
	)
}

func (m model) renderActive() string {
	s := m.snap

	parts := []string{
		labelStyle.Render("C'EST LE TOUR DE..."),
		nameStyle.Render(capitalize(s.Current())),
		"",
	}

	if len(s.History) > 0 {
		chips := make([]string, len(s.History))
		for i, name := range s.History {
			st := olderChipStyle
			if i == 0 {
				st = recentChipStyle
			}
			chips[i] = st.Render("❄ " + capitalize(name))
		}
		parts = append(parts,
			historyLabelStyle.Render("PRÉCÉDEMMENT :"),
			lipgloss.JoinHorizontal(lipgloss.Center, chips...),
			"",
		)
	}

	parts = append(parts,
		m.bar.ViewAs(s.Progress()),
		clockStyle.Render(rotation.FormatTime(s.TimeLeft))+" "+captionStyle.Render("RESTANT"),
		"",
		nextLabelStyle.Render("Prochain: ")+nextNameStyle.Render(capitalize(s.Next())),
	)
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// ── Helpers ──────────────────────────────────────────────────────

// capitalize upper-cases the first letter of every word.
func capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// durationPhrase describes the rotation period in French, e.g.
// "3 minutes" or "45 secondes".
func durationPhrase(seconds int) string {
	switch {
	case seconds >= 60 && seconds%60 == 0:
		if seconds == 60 {
			return "minute"
		}
		return fmt.Sprintf("%d minutes", seconds/60)
	case seconds == 1:
		return "seconde"
	default:
		return fmt.Sprintf("%d secondes", seconds)
	}
}
