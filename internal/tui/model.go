package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/service"
)

// Advisor is the TUI-facing subset of the recommendation pipeline.
type Advisor interface {
	Run(ctx context.Context, request string, k int) (*service.Result, error)
}

const (
	minTopK = 1
	maxTopK = 20
)

// Model is the Bubble Tea model for the interactive advisor.
type Model struct {
	advisor  Advisor
	input    textinput.Model
	viewport viewport.Model
	result   *service.Result
	topK     int
	cursor   int
	status   string
	summary  string
	ready    bool
	busy     bool
}

// New creates a new TUI model instance.
func New(advisor Advisor, summary string, topK int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Describe what you want to learn and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	if topK < minTopK {
		topK = minTopK
	}
	if topK > maxTopK {
		topK = maxTopK
	}
	return Model{advisor: advisor, input: ti, viewport: vp, topK: topK, summary: summary, status: "Ready. Type a learning goal."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

type resultMsg struct {
	result *service.Result
	err    error
}

func (m Model) runQuery(goal string) tea.Cmd {
	advisor, k := m.advisor, m.topK
	return func() tea.Msg {
		res, err := advisor.Run(context.Background(), goal, k)
		return resultMsg{result: res, err: err}
	}
}

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and query boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + summary
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderResult())
		return m, nil
	case resultMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			m.result = nil
		} else {
			m.result = msg.result
			m.cursor = 0
			m.status = fmt.Sprintf("%d matching courses", len(msg.result.Matches))
		}
		m.viewport.SetContent(m.renderResult())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			goal := strings.TrimSpace(m.input.Value())
			if goal != "" && !m.busy {
				m.busy = true
				m.status = fmt.Sprintf("Searching for %q ...", goal)
				return m, m.runQuery(goal)
			}
		case "left":
			if m.topK > minTopK {
				m.topK--
			}
			m.status = fmt.Sprintf("Result count: %d", m.topK)
			return m, nil
		case "right":
			if m.topK < maxTopK {
				m.topK++
			}
			m.status = fmt.Sprintf("Result count: %d", m.topK)
			return m, nil
		case "down":
			if m.result != nil && len(m.result.Matches) > 0 {
				m.cursor = (m.cursor + 1) % len(m.result.Matches)
				m.viewport.SetContent(m.renderResult())
				return m, nil
			}
		case "up":
			if m.result != nil && len(m.result.Matches) > 0 {
				m.cursor = (m.cursor - 1 + len(m.result.Matches)) % len(m.result.Matches)
				m.viewport.SetContent(m.renderResult())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current recommendation.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Curio Course Advisor")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	body := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) renderResult() string {
	if m.result == nil {
		return "No recommendation yet. Left/right adjusts the result count, up/down walks the matches."
	}
	var b strings.Builder
	b.WriteString(headingStyle.Render("Recommendation"))
	b.WriteString("\n\n")
	b.WriteString(m.result.Recommendation)
	if len(m.result.Matches) > 0 {
		b.WriteString("\n\n")
		b.WriteString(headingStyle.Render(fmt.Sprintf("Course %d/%d", m.cursor+1, len(m.result.Matches))))
		b.WriteString("\n\n")
		b.WriteString(renderMatch(m.result.Matches[m.cursor]))
	}
	return b.String()
}

func renderMatch(match domain.CourseMatch) string {
	var b strings.Builder
	b.WriteString(codeStyle.Render(match.Course.Code))
	b.WriteString(fmt.Sprintf("  score=%.3f\n", match.Score))
	b.WriteString(match.Course.Description)
	if match.Course.Semester != "" {
		b.WriteString("\nSemester: " + match.Course.Semester)
	}
	if match.Course.Instructor != "" {
		b.WriteString("\nInstructor: " + match.Course.Instructor)
	}
	if match.Explanation != "" {
		b.WriteString("\n\n" + match.Explanation)
	}
	return b.String()
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	codeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
