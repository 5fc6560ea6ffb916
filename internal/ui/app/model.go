package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	diarydto "mindbloom/internal/modules/diary/dto"
	insightsdto "mindbloom/internal/modules/insights/dto"
	subscriptiondto "mindbloom/internal/modules/subscription/dto"
	"mindbloom/internal/ui/theme"
	analyticsview "mindbloom/internal/ui/views/analytics"
	journalview "mindbloom/internal/ui/views/journal"
	subscriptionview "mindbloom/internal/ui/views/subscription"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires;
// sub-view ports are narrowed further through bridges below.

type diaryPort interface {
	ListWindow(ctx context.Context, userID string, windowDays, maxPoints int) (diarydto.WindowOutput, error)
	Submit(ctx context.Context, userID string, mood int, sleepHours float64, stress int, activities []string, notes string) (diarydto.EntryOutput, error)
}

type insightsPort interface {
	GetAnalysis(ctx context.Context, userID string, windowDays int) (insightsdto.AnalysisOutput, error)
}

type subscriptionPort interface {
	Status(ctx context.Context, userID string) (subscriptiondto.StatusOutput, error)
	Activate(ctx context.Context, userID string) (subscriptiondto.ActivateOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabJournal tabID = iota
	tabAnalytics
	tabSubscription
	tabCount
)

var tabLabels = [tabCount]string{"Journal", "Analytics", "Subscription"}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Add      key.Binding
	Periods  key.Binding
	Activate key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add entry")),
		Periods:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "period")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start trial")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Add},
		{k.Periods, k.Activate},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global
// help overlay and the status bar. All business logic is behind port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	journalView      journalview.Model
	analyticsView    analyticsview.Model
	subscriptionView subscriptionview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	width     int
	height    int
}

func NewModel(userID string, diary diaryPort, insights insightsPort, subscription subscriptionPort) Model {
	return Model{
		journalView:      journalview.New(diaryPortBridge{p: diary}, userID),
		analyticsView:    analyticsview.New(diaryPortBridge{p: diary}, insightsPortBridge{p: insights}, userID),
		subscriptionView: subscriptionview.New(subscriptionPortBridge{p: subscription}, userID),
		activeTab:        tabJournal,
		keys:             defaultKeys(),
		help:             help.New(),
		status:           "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.journalView.Init(),
		m.analyticsView.Init(),
		m.subscriptionView.Init(),
	)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case journalview.EntrySubmittedMsg:
		if msg.Err != nil {
			m.status = "save failed: " + msg.Err.Error()
		} else {
			m.status = "entry saved"
		}

	case subscriptionview.ActivatedMsg:
		if msg.Err != nil {
			m.status = "activation failed: " + msg.Err.Error()
		} else if msg.Out.Success {
			m.status = "subscription activated"
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the journal form while it is open: global keys must
		// not swallow typed input.
		if m.activeTab == tabJournal && m.journalView.FormOpen() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabJournal:
		m.journalView, tabCmd = m.journalView.Update(msg)
	case tabAnalytics:
		m.analyticsView, tabCmd = m.analyticsView.Update(msg)
	case tabSubscription:
		m.subscriptionView, tabCmd = m.subscriptionView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	// Spinner ticks and load messages must reach inactive tabs too, so
	// background fetches settle even while another tab is in front.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		var cmd tea.Cmd
		if m.activeTab != tabJournal {
			m.journalView, cmd = m.journalView.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.activeTab != tabAnalytics {
			m.analyticsView, cmd = m.analyticsView.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.activeTab != tabSubscription {
			m.subscriptionView, cmd = m.subscriptionView.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabJournal:
		return m.journalView.View()
	case tabAnalytics:
		return m.analyticsView.View()
	case tabSubscription:
		return m.subscriptionView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "mindbloom  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.journalView, _ = m.journalView.Update(sz)
	m.analyticsView, _ = m.analyticsView.Update(sz)
	m.subscriptionView, _ = m.subscriptionView.Update(sz)
}

// ─── port bridges ────────────────────────────────────────────────────────────
// Each bridge narrows a broad port to the minimal interface a sub-view
// needs, keeping view packages free of the wider port surface.

type diaryPortBridge struct{ p diaryPort }

func (b diaryPortBridge) ListWindow(ctx context.Context, userID string, windowDays, maxPoints int) (diarydto.WindowOutput, error) {
	return b.p.ListWindow(ctx, userID, windowDays, maxPoints)
}
func (b diaryPortBridge) Submit(ctx context.Context, userID string, mood int, sleepHours float64, stress int, activities []string, notes string) (diarydto.EntryOutput, error) {
	return b.p.Submit(ctx, userID, mood, sleepHours, stress, activities, notes)
}

type insightsPortBridge struct{ p insightsPort }

func (b insightsPortBridge) GetAnalysis(ctx context.Context, userID string, windowDays int) (insightsdto.AnalysisOutput, error) {
	return b.p.GetAnalysis(ctx, userID, windowDays)
}

type subscriptionPortBridge struct{ p subscriptionPort }

func (b subscriptionPortBridge) Status(ctx context.Context, userID string) (subscriptiondto.StatusOutput, error) {
	return b.p.Status(ctx, userID)
}
func (b subscriptionPortBridge) Activate(ctx context.Context, userID string) (subscriptiondto.ActivateOutput, error) {
	return b.p.Activate(ctx, userID)
}
