package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordrill/internal/model"
	"github.com/verte-zerg/wordrill/internal/session"
	statsPkg "github.com/verte-zerg/wordrill/internal/stats"
	"github.com/verte-zerg/wordrill/internal/trainer"
)

const (
	summaryRows   = 10
	wordCountStep = 10
)

// tickMsg drives the countdown of a time-limited session.
type tickMsg struct {
	sessionID string
	at        time.Time
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	trainer  *trainer.Trainer
	duration time.Duration
	now      func() time.Time

	width  int
	height int

	sess   *session.Session
	result *model.SessionResult

	lastWPM float64
	lastAcc float64
	hasLast bool
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	overflowStyle    = incorrectStyle.Strikethrough(true)
	erroredWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E2B714"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// NewModel constructs a typing TUI model. A positive duration makes every test time-limited.
func NewModel(tr *trainer.Trainer, duration time.Duration) *Model {
	m := &Model{
		trainer:  tr,
		duration: duration,
		now:      time.Now,
	}
	m.startSession(tr.NextWordList())
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
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyUp || msg.Type == tea.KeyDown {
			m.changeWordCount(msg.Type == tea.KeyUp)
			return m, nil
		}
		if m.result != nil {
			if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
				m.startSession(m.result.NextWords)
			}
			return m, nil
		}
		switch msg.Type {
		case tea.KeyTab:
			m.startSession(m.trainer.NextWordList())
			return m, nil
		case tea.KeyBackspace, tea.KeyDelete:
			m.sess.Backspace()
			return m, nil
		case tea.KeySpace:
			return m, m.handleRunes([]rune{' '})
		case tea.KeyRunes:
			return m, m.handleRunes(msg.Runes)
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	if m.result != nil {
		content = m.renderSummary()
	} else {
		content = m.renderWords()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) startSession(words []string) {
	m.sess = session.New(words, m.duration)
	m.result = nil
}

// changeWordCount resizes the next test. It only applies before the first
// keystroke or on the summary screen; out-of-range counts keep the current one.
func (m *Model) changeWordCount(up bool) {
	if m.result == nil && m.sess.State() != session.StateIdle {
		return
	}
	delta := -wordCountStep
	if up {
		delta = wordCountStep
	}
	if err := m.trainer.SetWordCount(m.trainer.WordCount() + delta); err != nil {
		return
	}
	m.startSession(m.trainer.NextWordList())
}

func (m *Model) handleRunes(runes []rune) tea.Cmd {
	wasIdle := m.sess.State() == session.StateIdle
	for _, r := range runes {
		m.sess.Type(r, m.now())
		if m.sess.Done() {
			m.finishSession()
			return nil
		}
	}
	if wasIdle && m.sess.State() != session.StateIdle && m.sess.Timed() {
		return m.scheduleTick()
	}
	return nil
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if m.result != nil || msg.sessionID != m.sess.ID() {
		return nil
	}
	if m.sess.Tick(msg.at) {
		m.finishSession()
		return nil
	}
	return m.scheduleTick()
}

func (m *Model) scheduleTick() tea.Cmd {
	id := m.sess.ID()
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{sessionID: id, at: t}
	})
}

func (m *Model) finishSession() {
	correct, incorrect := m.sess.Keystrokes()
	durationMs := m.sess.DurationMs(m.now())
	res := m.trainer.Finish(context.Background(), m.sess.ID(), m.sess.Events(), correct, incorrect, durationMs)
	m.result = &res
	m.lastWPM, _, m.lastAcc = statsPkg.SessionMetrics(correct, incorrect, durationMs)
	m.hasLast = true
}

func (m *Model) wordViews() []wordView {
	words := m.sess.Words()
	events := m.sess.Events()
	views := make([]wordView, len(words))
	for i, w := range words {
		views[i] = wordView{text: w}
		switch {
		case i < len(events):
			views[i].done = true
			views[i].hadError = events[i].HadError
		case i == m.sess.Index():
			views[i].current = true
			views[i].input = m.sess.Input()
		}
	}
	return views
}

func (m *Model) renderWords() string {
	styled := buildStyledRunes(m.wordViews())
	if m.width == 0 {
		return renderStyledRunes(styled)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	return lipgloss.NewStyle().Width(contentWidth).Render(wrapStyledRunes(styled, contentWidth))
}

func (m *Model) renderSummary() string {
	res := m.result
	lines := []string{titleStyle.Render("Session complete")}
	lines = append(lines, fmt.Sprintf("%.1f WPM · %.1f%% accuracy · %d words", m.lastWPM, m.lastAcc*100, len(m.sess.Events())))
	lines = append(lines, "")

	rows := res.Summary
	if len(rows) > summaryRows {
		rows = rows[:summaryRows]
	}
	var buf bytes.Buffer
	if err := statsPkg.RenderSummary(&buf, rows); err != nil {
		buf.Reset()
		buf.WriteString(fmt.Sprintf("Failed to render summary: %v", err))
	}
	lines = append(lines, strings.TrimRight(buf.String(), "\n"))
	lines = append(lines, "", footerStyle.Render("enter: next drill  up/down: words ±10  esc: quit"))
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	segments := make([]string, 0, 5)
	if m.result == nil {
		segments = append(segments, fmt.Sprintf("Word %d/%d", minInt(m.sess.Index()+1, len(m.sess.Words())), len(m.sess.Words())))
		if m.sess.Timed() {
			segments = append(segments, formatCountdown(m.sess.Remaining(m.now())))
		}
	}
	segments = append(segments, fmt.Sprintf("Target %d WPM", m.trainer.WPMTarget()))
	segments = append(segments, fmt.Sprintf("Graduated %d", m.trainer.GraduatedCount()))
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f WPM · %.1f%%", m.lastWPM, m.lastAcc*100))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func formatCountdown(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
