package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	diarydto "mindbloom/internal/modules/diary/dto"
	insightsdto "mindbloom/internal/modules/insights/dto"
	"mindbloom/internal/ui/components"
	"mindbloom/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type DiaryPort interface {
	ListWindow(ctx context.Context, userID string, windowDays, maxPoints int) (diarydto.WindowOutput, error)
}

type InsightsPort interface {
	GetAnalysis(ctx context.Context, userID string, windowDays int) (insightsdto.AnalysisOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// The two loads are independent and may resolve in any order; both carry
// the sequence token of the fetch that produced them.

type EntriesLoadedMsg struct {
	Seq    int
	Window diarydto.WindowOutput
	Err    error
}

type AnalysisLoadedMsg struct {
	Seq      int
	Analysis insightsdto.AnalysisOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

var periods = []int{7, 14, 30, 90}

type Model struct {
	diary    DiaryPort
	insights InsightsPort
	userID   string

	period   int
	window   diarydto.WindowOutput
	analysis insightsdto.AnalysisOutput

	spinner         spinner.Model
	entriesLoading  bool
	analysisLoading bool
	loadErr         error
	reqSeq          int
	width           int
	height          int
}

func New(diary DiaryPort, insights InsightsPort, userID string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Mood)

	return Model{
		diary:           diary,
		insights:        insights,
		userID:          userID,
		period:          30,
		spinner:         sp,
		entriesLoading:  true,
		analysisLoading: true,
		reqSeq:          1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchEntriesCmd(m.reqSeq), m.fetchAnalysisCmd(m.reqSeq), m.spinner.Tick)
}

func (m Model) fetchEntriesCmd(seq int) tea.Cmd {
	period := m.period
	return func() tea.Msg {
		// Only the most recent 30 points are ever plotted, even for the
		// 90-day window.
		window, err := m.diary.ListWindow(context.Background(), m.userID, period, 30)
		return EntriesLoadedMsg{Seq: seq, Window: window, Err: err}
	}
}

func (m Model) fetchAnalysisCmd(seq int) tea.Cmd {
	period := m.period
	return func() tea.Msg {
		analysis, err := m.insights.GetAnalysis(context.Background(), m.userID, period)
		return AnalysisLoadedMsg{Seq: seq, Analysis: analysis, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case EntriesLoadedMsg:
		if msg.Seq != m.reqSeq {
			return m, nil // response for an abandoned period
		}
		m.entriesLoading = false
		if msg.Err != nil {
			m.loadErr = msg.Err
			m.window = diarydto.WindowOutput{}
			return m, nil
		}
		m.window = msg.Window

	case AnalysisLoadedMsg:
		if msg.Seq != m.reqSeq {
			return m, nil
		}
		m.analysisLoading = false
		if msg.Err != nil {
			// A failed analysis renders the same neutral card as
			// insufficient data; the error stays visible in the footer.
			m.loadErr = msg.Err
			m.analysis = insightsdto.AnalysisOutput{}
			return m, nil
		}
		m.analysis = msg.Analysis

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if idx := periodIndex(msg.String()); idx >= 0 && periods[idx] != m.period {
			m.period = periods[idx]
			return m.reload()
		}
		if msg.String() == "r" {
			return m.reload()
		}
	}

	return m, tea.Batch(cmds...)
}

// reload bumps the sequence token and re-fetches both halves. In-flight
// responses for the previous period will arrive with a stale token and
// be dropped. Switching periods never serves cached data.
func (m Model) reload() (Model, tea.Cmd) {
	m.reqSeq++
	m.entriesLoading = true
	m.analysisLoading = true
	m.loadErr = nil
	return m, tea.Batch(m.fetchEntriesCmd(m.reqSeq), m.fetchAnalysisCmd(m.reqSeq))
}

func periodIndex(key string) int {
	for i := range periods {
		if key == fmt.Sprint(i+1) {
			return i
		}
	}
	return -1
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.periodBar() + "\n\n")

	if m.entriesLoading || m.analysisLoading {
		sb.WriteString(m.spinner.View() + " Loading analytics…")
		return theme.Pane.Width(max(m.width-4, 20)).Render(sb.String())
	}

	if stats := m.analysis.Stats; stats != nil {
		sb.WriteString(m.statCards(stats) + "\n\n")
	}

	if len(m.window.Series) > 0 {
		sb.WriteString(theme.Title.Render(fmt.Sprintf("Trend — last %d points", len(m.window.Series))) + "\n")
		sb.WriteString(m.chart() + "\n\n")
	}

	if m.analysis.Sufficient {
		sb.WriteString(m.insightCards())
		sb.WriteString(m.recommendationCards())
	} else {
		sb.WriteString(theme.Title.Render("Not enough data yet") + "\n")
		sb.WriteString(theme.Muted.Render("Add more entries to unlock personalized insights.") + "\n")
		sb.WriteString(theme.Good.Render("→ press a on the Journal tab to add an entry") + "\n")
	}

	if m.loadErr != nil {
		sb.WriteString("\n" + theme.Warn.Render("analytics: "+m.loadErr.Error()) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("1-4: period  r: refresh"))
	return theme.Pane.Width(max(m.width-4, 20)).Render(sb.String())
}

func (m Model) periodBar() string {
	parts := make([]string, len(periods))
	for i, days := range periods {
		label := fmt.Sprintf(" %d days ", days)
		if days == m.period {
			parts[i] = theme.Hot.Render(label)
		} else {
			parts[i] = theme.Muted.Render(label)
		}
	}
	return strings.Join(parts, theme.Muted.Render("│"))
}

func (m Model) statCards(stats *insightsdto.StatsOutput) string {
	trend := "stable"
	if stats.Improving {
		trend = "improving"
	}
	cards := []string{
		theme.MoodFg.Render(fmt.Sprintf("♥ avg mood %.1f/10 (%s)", stats.AvgMood, trend)),
		theme.SleepFg.Render(fmt.Sprintf("☾ avg sleep %.1fh (%s)", stats.AvgSleep, stats.SleepNote)),
		theme.StressFg.Render(fmt.Sprintf("⚡ avg stress %.1f/10 (%s)", stats.AvgStress, stats.StressNote)),
		theme.Good.Render(fmt.Sprintf("▤ %d entries / %d days", stats.TotalEntries, m.period)),
	}
	return strings.Join(cards, theme.Muted.Render("  │  "))
}

func (m Model) chart() string {
	moods := make([]float64, len(m.window.Series))
	sleeps := make([]float64, len(m.window.Series))
	stresses := make([]float64, len(m.window.Series))
	for i, p := range m.window.Series {
		moods[i] = float64(p.Mood)
		sleeps[i] = p.Sleep
		stresses[i] = float64(p.Stress)
	}
	var sb strings.Builder
	sb.WriteString(theme.Muted.Render("mood   ") + components.Sparkline(moods, 10, theme.MoodFg) + "\n")
	sb.WriteString(theme.Muted.Render("sleep  ") + components.Sparkline(sleeps, 12, theme.SleepFg) + "\n")
	sb.WriteString(theme.Muted.Render("stress ") + components.Sparkline(stresses, 10, theme.StressFg))
	return sb.String()
}

func (m Model) insightCards() string {
	if len(m.analysis.Insights) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Your patterns") + "\n")
	for _, insight := range m.analysis.Insights {
		marker := theme.Good.Render("▲ ")
		if !insight.Positive {
			marker = theme.Hot.Render("▼ ")
		}
		sb.WriteString(marker + insight.Title + "  " + theme.Muted.Render(insight.Metric) + "\n")
		sb.WriteString("  " + theme.Muted.Render(insight.Description) + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) recommendationCards() string {
	if len(m.analysis.Recommendations) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Recommendations") + "\n")
	for _, rec := range m.analysis.Recommendations {
		line := rec.Glyph + " " + rec.Title
		if rec.Urgent {
			line += "  " + theme.Hot.Render("important")
		}
		sb.WriteString(line + "\n")
		sb.WriteString("  " + theme.Muted.Render(rec.Description) + "\n")
	}
	return sb.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
