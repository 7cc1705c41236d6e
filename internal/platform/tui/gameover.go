package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickball/internal/games/brickball"
	"github.com/vovakirdan/brickball/internal/storage"
)

// Game-over layout constants
const (
	topScoresLimit = 10 // Rows loaded into the table
	minTableHeight = 3
	reservedRows   = 14 // Title, digits, help and margins
)

// placeCell is one digit slot of the final score.
type placeCell struct {
	text string
}

func (c *placeCell) DisplayNumber(n int) { c.text = strconv.Itoa(n) }

func (c *placeCell) DisplayNone() { c.text = " " }

// gameOverHelp limits the help bar to the keys that work on this scene.
type gameOverHelp struct {
	keys KeyMap
}

func (h gameOverHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Restart, h.keys.Quit}
}

func (h gameOverHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// GameOverModel shows the final score from the handoff record and the
// best finished runs. It is embedded in Model once the game asks for it.
type GameOverModel struct {
	final   int
	places  [brickball.ScorePlaces]placeCell
	scores  []storage.ScoreEntry
	savedID int64 // Row of this run, 0 if it was not saved
	rank    int   // 1-based rank of this run in scores, 0 if absent
	table   table.Model
	help    help.Model
	keys    KeyMap
	width   int
	height  int
}

// NewGameOverModel builds the scene from the handoff and the loaded scores.
func NewGameOverModel(h *brickball.Handoff, scores []storage.ScoreEntry, savedID int64, width, height int) GameOverModel {
	m := GameOverModel{
		scores:  scores,
		savedID: savedID,
		help:    help.New(),
		keys:    DefaultKeyMap(),
		width:   width,
		height:  height,
	}
	if h != nil {
		m.final, _ = h.FinalScore()
	}

	displays := make([]brickball.NumberDisplay, len(m.places))
	for i := range m.places {
		displays[i] = &m.places[i]
	}
	brickball.ShowDigits(m.final, displays)

	for i, s := range scores {
		if savedID != 0 && s.ID == savedID {
			m.rank = i + 1
			break
		}
	}

	m.table = m.createTable()
	return m
}

// createTable creates the top-scores table sized for the current window.
func (m *GameOverModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 14},
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	height := min(len(rows)+1, m.height-reservedRows)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(m.rank > 0),
		table.WithHeight(max(height, minTableHeight)),
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

	if m.rank > 0 {
		t.SetCursor(m.rank - 1)
	}
	return t
}

// SetSize adapts the scene to a new window size.
func (m *GameOverModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table = m.createTable()
}

// Update scrolls the table. Restart and quit are handled by the caller.
func (m GameOverModel) Update(msg tea.Msg) (GameOverModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Final returns the score shown by the scene.
func (m GameOverModel) Final() int { return m.final }

// Rank returns this run's position in the table, or 0.
func (m GameOverModel) Rank() int { return m.rank }

// Places returns the digit slots from thousands down to singles.
func (m GameOverModel) Places() []string {
	out := make([]string, 0, len(m.places))
	for i := len(m.places) - 1; i >= 0; i-- {
		out = append(out, m.places[i].text)
	}
	return out
}

// View renders the scene.
func (m GameOverModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("G A M E   O V E R"))
	b.WriteString("\n\n")

	digitStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("208")).
		Bold(true).
		Padding(0, 1)
	cells := make([]string, 0, len(m.places))
	for _, p := range m.Places() {
		cells = append(cells, digitStyle.Render(p))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n")

	if m.rank == 1 && len(m.scores) > 1 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("New high score!"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(gameOverHelp{keys: m.keys})))

	if m.width <= 0 || m.height <= 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, strings.Split(b.String(), "\n")...))
}

// renderTableContent renders the table or empty message.
func (m GameOverModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		return emptyStyle.Render("No scores recorded.")
	}
	return m.table.View()
}
