package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/infinity-spectrum/internal/storage"
	"github.com/vovakirdan/infinity-spectrum/internal/tunnel"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxRuns            = 100
)

// scoreboardTab is one difficulty filter of the run history.
type scoreboardTab struct {
	Title      string
	Difficulty int // storage.AllDifficulties for every level
}

var scoreboardTabs = []scoreboardTab{
	{Title: "All", Difficulty: storage.AllDifficulties},
	{Title: "Easy", Difficulty: int(tunnel.DifficultyEasy)},
	{Title: "Normal", Difficulty: int(tunnel.DifficultyNormal)},
	{Title: "Hard", Difficulty: int(tunnel.DifficultyHard)},
}

// runOrder selects how the run history is listed.
type runOrder int

const (
	orderBest runOrder = iota
	orderRecent
)

func (o runOrder) String() string {
	if o == orderRecent {
		return "latest"
	}
	return "best"
}

// ScoreboardKeyMap defines the key bindings for the run history.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Order   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Order, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Order, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next level"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev level"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "best/latest"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreboardStyles groups the lipgloss styles of the run history screen.
type scoreboardStyles struct {
	title     lipgloss.Style
	panel     lipgloss.Style
	sidebar   lipgloss.Style
	activeTab lipgloss.Style
	tab       lipgloss.Style
	empty     lipgloss.Style
	help      lipgloss.Style
}

func newScoreboardStyles() scoreboardStyles {
	border := lipgloss.Color("240")
	highlight := lipgloss.Color("229")
	muted := lipgloss.Color("241")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return scoreboardStyles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(highlight),
		panel:     panel,
		sidebar:   panel.Width(sidebarWidth),
		activeTab: lipgloss.NewStyle().Bold(true).Foreground(highlight).Background(lipgloss.Color("57")).Padding(0, 1),
		tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		empty:     lipgloss.NewStyle().Foreground(muted).Italic(true).Padding(2, 4),
		help:      lipgloss.NewStyle().Foreground(muted),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	store     *storage.Store
	runs      []storage.RunEntry
	stats     map[int]*storage.RunStats
	loadErr   error
	tabCursor int
	order     runOrder
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	styles    scoreboardStyles
	width     int
	height    int
	quitting  bool
	goingBack bool
	embedded  bool // Hosted inside the tunnel model; back does not end the program
}

// NewScoreboardModel creates the run history screen and loads the first tab.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		styles: newScoreboardStyles(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 7},
			{Title: "Rings", Width: 6},
			{Title: "Time", Width: 8},
			{Title: "Date", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload refreshes stats and the runs of the selected tab and order.
func (m *ScoreboardModel) reload() {
	m.runs, m.loadErr = nil, nil
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	if stats, err := m.store.Stats(); err == nil {
		m.stats = stats
	}

	difficulty := scoreboardTabs[m.tabCursor].Difficulty
	var runs []storage.RunEntry
	var err error
	if m.order == orderRecent {
		runs, err = m.recentRuns(difficulty)
	} else {
		runs, err = m.store.TopRuns(difficulty, maxRuns)
	}
	m.runs, m.loadErr = runs, err
	m.fillTable()
}

// recentRuns filters the latest runs to one difficulty.
func (m *ScoreboardModel) recentRuns(difficulty int) ([]storage.RunEntry, error) {
	runs, err := m.store.RecentRuns(maxRuns)
	if err != nil || difficulty == storage.AllDifficulties {
		return runs, err
	}
	filtered := runs[:0]
	for _, r := range runs {
		if r.Difficulty == difficulty {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			tunnel.Difficulty(r.Difficulty).String(),
			strconv.Itoa(r.Passed),
			r.Duration.Round(100 * time.Millisecond).String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) moveTab(delta int) {
	n := len(scoreboardTabs)
	m.tabCursor = ((m.tabCursor+delta)%n + n) % n
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.moveTab(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.moveTab(-1)
			return m, nil
		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := fmt.Sprintf("RUN HISTORY - %s (%s)", scoreboardTabs[m.tabCursor].Title, m.order)

	var body string
	if m.width >= minWidthForSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.sidebar.Render(m.sidebar()),
			"  ",
			m.styles.panel.Render(m.tableContent()),
		)
	} else {
		body = centerText(m.tabBar(), m.width) + "\n\n" + m.styles.panel.Render(m.tableContent())
	}

	return m.styles.title.Render(centerText(title, m.width)) + "\n\n" +
		body + "\n" +
		m.styles.help.Render(m.help.View(m.keys))
}

// sidebar lists the difficulty tabs followed by the stats of the selection.
func (m ScoreboardModel) sidebar() string {
	var b strings.Builder
	b.WriteString("Difficulty\n")
	b.WriteString(strings.Repeat("─", sidebarWidth-4))
	b.WriteString("\n")
	for i, tab := range scoreboardTabs {
		if i == m.tabCursor {
			b.WriteString(m.styles.title.Render("> " + tab.Title))
		} else {
			b.WriteString("  " + tab.Title)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.statsSummary())
	return b.String()
}

func (m ScoreboardModel) tabBar() string {
	tabs := make([]string, len(scoreboardTabs))
	for i, tab := range scoreboardTabs {
		if i == m.tabCursor {
			tabs[i] = m.styles.activeTab.Render(tab.Title)
		} else {
			tabs[i] = m.styles.tab.Render(tab.Title)
		}
	}
	return strings.Join(tabs, " ")
}

// statsSummary totals the stats of the selected difficulty, or every level for All.
func (m ScoreboardModel) statsSummary() string {
	tab := scoreboardTabs[m.tabCursor].Difficulty

	var runs, best int
	var passed int64
	var longest time.Duration
	for level, st := range m.stats {
		if tab != storage.AllDifficulties && tab != level {
			continue
		}
		runs += st.RunsCount
		passed += st.TotalPassed
		best = max(best, st.HighScore)
		longest = max(longest, st.LongestRun)
	}
	if runs == 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("Runs:    %d\nBest:    %d\nRings:   %d\nLongest: %s",
		runs, best, passed, longest.Round(100*time.Millisecond))
}

func (m ScoreboardModel) tableContent() string {
	switch {
	case m.loadErr != nil:
		return m.styles.empty.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return m.styles.empty.Render("No runs recorded yet.\nFly the tunnel to set a score!")
	default:
		return m.table.View()
	}
}

// IsGoingBack reports whether the user left the screen with back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText left-pads text to center it in width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the run history screen as its own program.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}
