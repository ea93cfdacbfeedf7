// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordrill/internal/model"
	"github.com/verte-zerg/wordrill/internal/stats"
	"github.com/verte-zerg/wordrill/internal/trainer"
)

const (
	tabOverview = iota
	tabWords
	tabGraduated
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	trainer *trainer.Trainer

	report stats.Report

	tabs           []string
	activeTab      int
	overview       viewport.Model
	wordTable      table.Model
	graduatedTable table.Model

	width  int
	height int

	wpmMode  bool
	wpmInput textinput.Model
	wpmError string
}

// NewModel constructs a stats UI model.
func NewModel(tr *trainer.Trainer) *Model {
	m := &Model{
		trainer:  tr,
		tabs:     []string{"Overview", "Words", "Graduated"},
		overview: viewport.New(0, 0),
	}
	m.wpmInput = newWPMInput()
	m.wordTable = newTable(wordColumns())
	m.graduatedTable = newTable(graduatedColumns())
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderOverview()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.wpmMode {
			return m.updateWPMInput(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "/":
			return m.startWPMInput()
		case "g", "home":
			m.gotoEdge(true)
			return m, nil
		case "G", "end":
			m.gotoEdge(false)
			return m, nil
		}
		return m, m.forward(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.wpmMode {
		return fitLines(m.renderWPMModal(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func newWPMInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "Target WPM: "
	input.CharLimit = 4
	input.Placeholder = "40"
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if m.wpmError != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	for _, t := range []*table.Model{&m.wordTable, &m.graduatedTable} {
		t.SetWidth(m.width)
		t.SetHeight(maxInt(1, bodyHeight-1))
	}
	promptWidth := lipgloss.Width(m.wpmInput.Prompt)
	m.wpmInput.Width = maxInt(10, modalInnerWidth(m.width)-promptWidth)
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	m.wordTable.Blur()
	m.graduatedTable.Blur()
	switch m.activeTab {
	case tabWords:
		m.wordTable.Focus()
	case tabGraduated:
		m.graduatedTable.Focus()
	}
}

func (m *Model) gotoEdge(top bool) {
	switch m.activeTab {
	case tabWords:
		if top {
			m.wordTable.GotoTop()
		} else {
			m.wordTable.GotoBottom()
		}
	case tabGraduated:
		if top {
			m.graduatedTable.GotoTop()
		} else {
			m.graduatedTable.GotoBottom()
		}
	default:
		if top {
			m.overview.GotoTop()
		} else {
			m.overview.GotoBottom()
		}
	}
}

func (m *Model) forward(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.activeTab {
	case tabWords:
		m.wordTable, cmd = m.wordTable.Update(msg)
	case tabGraduated:
		m.graduatedTable, cmd = m.graduatedTable.Update(msg)
	default:
		m.overview, cmd = m.overview.Update(msg)
	}
	return cmd
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	summary := fmt.Sprintf("Target: %.0f WPM  graduate under %.1f ms/char", m.report.WPM, m.report.Threshold)
	return padLines(m.renderTabs(), m.width) + "\n" + headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	help := headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Target WPM: /  Quit: q")
	if m.wpmError != "" {
		return help + "\n" + errorStyle.Render(m.wpmError)
	}
	return help
}

func (m *Model) renderBody() string {
	switch m.activeTab {
	case tabWords:
		if len(m.report.Ranked) == 0 {
			return "No words found."
		}
		return tableMutedStyle.Render(m.wordTable.View())
	case tabGraduated:
		if len(m.report.Graduated) == 0 {
			return fmt.Sprintf("No graduated words at %.0f WPM.", m.report.WPM)
		}
		return tableMutedStyle.Render(m.graduatedTable.View())
	default:
		return m.overview.View()
	}
}

func (m *Model) refreshReport() {
	m.report = stats.BuildReport(m.trainer, float64(m.trainer.WPMTarget()), m.trainer.CandidateLimit())
	m.wordTable.SetRows(wordRows(m.report.Ranked, m.report.WPM, m.report.Candidates))
	m.graduatedTable.SetRows(graduatedRows(m.report.Graduated))
	m.renderOverview()
}

func (m *Model) renderOverview() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.overview.SetContent(renderOverview(m.report, width))
}

func renderOverview(r stats.Report, width int) string {
	cards := []string{
		metricCard("Words", strconv.Itoa(len(r.Ranked))),
		metricCard("Practised", strconv.Itoa(r.Practised)),
		metricCard("Graduated", strconv.Itoa(len(r.Graduated))),
		metricCard("Target", fmt.Sprintf("%.0f WPM", r.WPM)),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		summary = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	next := "Nothing left to drill at this target."
	if len(r.Candidates) > 0 {
		next = "Next drill: " + strings.Join(r.Candidates, ", ")
	}
	return summary + "\n\n" + next
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func wordColumns() []table.Column {
	return []table.Column{
		{Title: "Word", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "Avg Time (ms)", Width: 14},
		{Title: "Attempts", Width: 9},
		{Title: "Status", Width: 10},
	}
}

func graduatedColumns() []table.Column {
	return []table.Column{
		{Title: "Word", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "Attempts", Width: 9},
	}
}

func wordRows(ranked []model.WordRecord, wpm float64, next []string) []table.Row {
	cells := stats.MarkNext(ranked, wpm, next)
	rows := make([]table.Row, 0, len(cells))
	for _, row := range cells {
		rows = append(rows, table.Row(row))
	}
	return rows
}

func graduatedRows(graduated []model.WordRecord) []table.Row {
	rows := make([]table.Row, 0, len(graduated))
	for _, rec := range graduated {
		rows = append(rows, table.Row{
			rec.Word,
			fmt.Sprintf("%.0f", rec.LastScore),
			fmt.Sprintf("%d", rec.Attempts),
		})
	}
	return rows
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(1),
	)
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) startWPMInput() (tea.Model, tea.Cmd) {
	m.wpmMode = true
	m.wpmError = ""
	m.wpmInput.SetValue(strconv.Itoa(m.trainer.WPMTarget()))
	return m, m.wpmInput.Focus()
}

func (m *Model) updateWPMInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.wpmMode = false
		m.wpmError = ""
		m.wpmInput.Blur()
		return m, nil
	case tea.KeyEnter:
		if err := m.applyWPM(); err != nil {
			m.wpmError = err.Error()
			return m, nil
		}
		m.wpmMode = false
		m.wpmError = ""
		m.wpmInput.Blur()
		m.refreshReport()
		m.updateLayout()
		return m, nil
	}
	var cmd tea.Cmd
	m.wpmInput, cmd = m.wpmInput.Update(msg)
	return m, cmd
}

func (m *Model) applyWPM() error {
	raw := strings.TrimSpace(m.wpmInput.Value())
	wpm, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid target %q (use a positive integer)", raw)
	}
	return m.trainer.SetWPMTarget(context.Background(), wpm)
}

func (m *Model) renderWPMModal() string {
	body := []string{
		cardValueStyle.Render("Target WPM"),
		m.wpmInput.View(),
		headerStyle.Render("Words faster than the target graduate out of practice."),
		headerStyle.Render("Enter to apply / Esc to cancel"),
	}
	if m.wpmError != "" {
		body = append(body, errorStyle.Render(m.wpmError))
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func modalWidth(width int) int {
	return maxInt(40, minInt(width-4, 80))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width)
	w -= 6 // 2 border + 4 padding
	if w < 10 {
		return 10
	}
	return w
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
