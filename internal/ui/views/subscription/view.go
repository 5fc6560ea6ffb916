package subscription

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	subscriptiondto "mindbloom/internal/modules/subscription/dto"
	"mindbloom/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SubscriptionPort interface {
	Status(ctx context.Context, userID string) (subscriptiondto.StatusOutput, error)
	Activate(ctx context.Context, userID string) (subscriptiondto.ActivateOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StatusLoadedMsg struct {
	Seq    int
	Status subscriptiondto.StatusOutput
	Err    error
}

type ActivatedMsg struct {
	Out subscriptiondto.ActivateOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

var proFeatures = []string{
	"Unlimited AI analysis",
	"Advanced pattern analytics",
	"Content library: meditations, courses, techniques",
	"Data export (PDF and Excel reports)",
	"Smart reminders",
	"Unlimited entry history",
}

type Model struct {
	port   SubscriptionPort
	userID string

	status     subscriptiondto.StatusOutput
	hasStatus  bool
	spinner    spinner.Model
	loading    bool
	activating bool
	notice     string
	loadErr    error
	reqSeq     int
	width      int
	height     int
}

func New(port SubscriptionPort, userID string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Mood)

	return Model{
		port:    port,
		userID:  userID,
		spinner: sp,
		loading: true,
		reqSeq:  1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(m.reqSeq), m.spinner.Tick)
}

func (m Model) fetchCmd(seq int) tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Status(context.Background(), m.userID)
		return StatusLoadedMsg{Seq: seq, Status: status, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StatusLoadedMsg:
		if msg.Seq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.loadErr = msg.Err
			m.hasStatus = false
			return m, nil
		}
		m.loadErr = nil
		m.status = msg.Status
		m.hasStatus = true

	case ActivatedMsg:
		m.activating = false
		if msg.Err != nil {
			// Write failures surface and leave prior state untouched.
			m.notice = "activation failed: " + msg.Err.Error()
			return m, nil
		}
		if !msg.Out.Success {
			m.notice = "activation was not accepted"
			return m, nil
		}
		m.notice = "Subscription activated — welcome to Pro!"
		m.status = msg.Out.Status
		m.hasStatus = true

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.activate()
		case "r":
			m.reqSeq++
			m.loading = true
			return m, m.fetchCmd(m.reqSeq)
		}
	}

	return m, tea.Batch(cmds...)
}

// activate triggers the subscription mutation. The trigger is disabled
// while a call is outstanding and absent entirely when the plan is
// already active.
func (m Model) activate() (Model, tea.Cmd) {
	if m.activating {
		return m, nil
	}
	if m.hasStatus && m.status.CTA != "start-trial" {
		return m, nil
	}
	m.activating = true
	m.notice = ""
	port, userID := m.port, m.userID
	return m, func() tea.Msg {
		out, err := port.Activate(context.Background(), userID)
		return ActivatedMsg{Out: out, Err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading subscription…")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("MindBloom Pro") + "\n")
	sb.WriteString(theme.Muted.Render("Unlock the full picture of your mental health") + "\n\n")

	if m.hasStatus {
		sb.WriteString(m.statusCard() + "\n\n")
	} else if m.loadErr != nil {
		sb.WriteString(theme.Warn.Render("subscription: "+m.loadErr.Error()) + "\n\n")
	}

	sb.WriteString(m.planCards() + "\n")

	if m.notice != "" {
		sb.WriteString("\n" + theme.Good.Render(m.notice) + "\n")
	}
	if m.hasStatus && m.status.InvariantNote != "" {
		sb.WriteString("\n" + theme.Warn.Render(m.status.InvariantNote) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render(m.footerHint()))
	return theme.Pane.Width(max(m.width-4, 20)).Render(sb.String())
}

func (m Model) statusCard() string {
	var badge string
	switch m.status.Badge {
	case "trial-active":
		badge = theme.Good.Render("🎁 trial")
	case "pro-active":
		badge = theme.Good.Render("✅ active")
	default:
		badge = theme.Warn.Render("⏰ expired")
	}

	var title string
	switch m.status.Label {
	case "trial":
		title = "Trial period"
	case "pro":
		title = "Pro subscription"
	default:
		title = "Free plan"
	}

	access := "Access has ended"
	if m.status.HasAccess {
		access = fmt.Sprintf("Days left: %d", m.status.DaysLeft)
	}
	return theme.Title.Render(title) + "  " + badge + "\n" + theme.Muted.Render(access)
}

func (m Model) planCards() string {
	var sb strings.Builder
	sb.WriteString(theme.Muted.Render("Free — daily tracking, simple charts, 30-day history") + "\n")
	sb.WriteString(theme.MoodFg.Render("Pro — 199 ₽/month, 2-day free trial") + "\n")
	for _, feature := range proFeatures {
		sb.WriteString(theme.Good.Render("  ✓ ") + feature + "\n")
	}
	return sb.String()
}

func (m Model) footerHint() string {
	if m.activating {
		return m.spinner.View() + " activating…"
	}
	if m.hasStatus && m.status.CTA == "none" {
		return "r: refresh"
	}
	return "enter: start trial  r: refresh"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
