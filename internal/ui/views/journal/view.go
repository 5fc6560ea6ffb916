package journal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	diarydto "mindbloom/internal/modules/diary/dto"
	"mindbloom/internal/ui/components"
	"mindbloom/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type DiaryPort interface {
	ListWindow(ctx context.Context, userID string, windowDays, maxPoints int) (diarydto.WindowOutput, error)
	Submit(ctx context.Context, userID string, mood int, sleepHours float64, stress int, activities []string, notes string) (diarydto.EntryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type WindowLoadedMsg struct {
	Seq    int
	Window diarydto.WindowOutput
	Err    error
}

type EntrySubmittedMsg struct {
	Entry diarydto.EntryOutput
	Err   error
}

// ─── form ────────────────────────────────────────────────────────────────────

type formField int

const (
	fieldMood formField = iota
	fieldSleep
	fieldStress
	fieldActivities
	fieldNotes
	fieldCount
)

var moodEmojis = []string{"😢", "😟", "😕", "😐", "🙂", "😊", "😄", "😁", "🤩", "🥳"}

var activityOptions = []struct {
	id    string
	label string
}{
	{"walk", "Walk"},
	{"workout", "Workout"},
	{"yoga", "Yoga"},
	{"meditation", "Meditation"},
	{"reading", "Reading"},
	{"none", "Rest day"},
}

type form struct {
	mood     textinput.Model
	sleep    textinput.Model
	stress   textinput.Model
	notes    textarea.Model
	selected map[string]bool
	focus    formField
}

func newForm() form {
	mood := textinput.New()
	mood.Placeholder = "7"
	mood.CharLimit = 2
	mood.Width = 4
	mood.Focus()

	sleep := textinput.New()
	sleep.Placeholder = "7.5"
	sleep.CharLimit = 4
	sleep.Width = 5

	stress := textinput.New()
	stress.Placeholder = "5"
	stress.CharLimit = 2
	stress.Width = 4

	notes := textarea.New()
	notes.Placeholder = "Anything worth remembering about today?"
	notes.SetHeight(3)
	notes.CharLimit = 500

	return form{
		mood:     mood,
		sleep:    sleep,
		stress:   stress,
		notes:    notes,
		selected: map[string]bool{},
		focus:    fieldMood,
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   DiaryPort
	userID string

	window     diarydto.WindowOutput
	spinner    spinner.Model
	loading    bool
	submitting bool
	showForm   bool
	form       form
	loadErr    error
	reqSeq     int
	width      int
	height     int
}

func New(port DiaryPort, userID string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Mood)

	return Model{
		port:    port,
		userID:  userID,
		spinner: sp,
		loading: true,
		form:    newForm(),
		reqSeq:  1,
	}
}

// Init starts the first fetch with the sequence token pre-seeded by New:
// bubbletea discards model changes made inside Init.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(m.reqSeq), m.spinner.Tick)
}

// fetchCmd issues a window fetch tagged with a sequence token; responses
// carrying a stale token are discarded on arrival.
func (m Model) fetchCmd(seq int) tea.Cmd {
	return func() tea.Msg {
		window, err := m.port.ListWindow(context.Background(), m.userID, 7, 7)
		return WindowLoadedMsg{Seq: seq, Window: window, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.notes.SetWidth(min(m.width-8, 72))

	case WindowLoadedMsg:
		if msg.Seq != m.reqSeq {
			return m, nil // stale response from an abandoned fetch
		}
		m.loading = false
		if msg.Err != nil {
			// Read failures degrade to the neutral empty state.
			m.loadErr = msg.Err
			m.window = diarydto.WindowOutput{}
			return m, nil
		}
		m.loadErr = nil
		m.window = msg.Window

	case EntrySubmittedMsg:
		m.submitting = false
		if msg.Err != nil {
			m.loadErr = msg.Err
			return m, nil
		}
		m.showForm = false
		m.form = newForm()
		// No optimistic append: a successful submit re-fetches the window.
		m.reqSeq++
		m.loading = true
		cmds = append(cmds, m.fetchCmd(m.reqSeq))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.showForm {
			return m.updateForm(msg)
		}
		if msg.String() == "a" {
			m.showForm = true
			m.loadErr = nil
			return m, textinput.Blink
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showForm = false
		m.form = newForm()
		return m, nil
	case "tab", "shift+tab":
		delta := formField(1)
		if msg.String() == "shift+tab" {
			delta = fieldCount - 1
		}
		m.form.focus = (m.form.focus + delta) % fieldCount
		m.syncFocus()
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.form.focus != fieldNotes {
			return m.submit()
		}
	}

	if m.form.focus == fieldActivities {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(activityOptions) {
			id := activityOptions[n-1].id
			m.form.selected[id] = !m.form.selected[id]
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldMood:
		m.form.mood, cmd = m.form.mood.Update(msg)
	case fieldSleep:
		m.form.sleep, cmd = m.form.sleep.Update(msg)
	case fieldStress:
		m.form.stress, cmd = m.form.stress.Update(msg)
	case fieldNotes:
		m.form.notes, cmd = m.form.notes.Update(msg)
	}
	return m, cmd
}

func (m *Model) syncFocus() {
	m.form.mood.Blur()
	m.form.sleep.Blur()
	m.form.stress.Blur()
	m.form.notes.Blur()
	switch m.form.focus {
	case fieldMood:
		m.form.mood.Focus()
	case fieldSleep:
		m.form.sleep.Focus()
	case fieldStress:
		m.form.stress.Focus()
	case fieldNotes:
		m.form.notes.Focus()
	}
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	mood, err := strconv.Atoi(strings.TrimSpace(valueOr(m.form.mood.Value(), "7")))
	if err != nil {
		m.loadErr = fmt.Errorf("mood must be a number")
		return m, nil
	}
	sleep, err := strconv.ParseFloat(strings.TrimSpace(valueOr(m.form.sleep.Value(), "7")), 64)
	if err != nil {
		m.loadErr = fmt.Errorf("sleep hours must be a number")
		return m, nil
	}
	stress, err := strconv.Atoi(strings.TrimSpace(valueOr(m.form.stress.Value(), "5")))
	if err != nil {
		m.loadErr = fmt.Errorf("stress must be a number")
		return m, nil
	}
	var activities []string
	for _, opt := range activityOptions {
		if m.form.selected[opt.id] {
			activities = append(activities, opt.id)
		}
	}
	notes := m.form.notes.Value()

	m.submitting = true
	m.loadErr = nil
	port, userID := m.port, m.userID
	return m, func() tea.Msg {
		entry, err := port.Submit(context.Background(), userID, mood, sleep, stress, activities, notes)
		return EntrySubmittedMsg{Entry: entry, Err: err}
	}
}

func valueOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// FormOpen reports whether the entry form is capturing input. The app
// model checks this to keep global key bindings from eating typed text.
func (m Model) FormOpen() bool {
	return m.showForm
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading journal…")
	}
	if m.showForm {
		return m.formView()
	}
	return m.dashboardView()
}

func (m Model) dashboardView() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("How are you feeling today?") + "\n")
	sb.WriteString(theme.Muted.Render("Track your mood and find your patterns") + "\n\n")

	sb.WriteString(m.summaryCards() + "\n\n")

	if len(m.window.Series) > 0 {
		sb.WriteString(theme.Title.Render("Last 7 days") + "\n")
		sb.WriteString(m.chart() + "\n")
	} else {
		sb.WriteString(theme.Muted.Render("No entries yet — press a to add your first one") + "\n")
	}

	if m.loadErr != nil {
		sb.WriteString("\n" + theme.Warn.Render("journal: "+m.loadErr.Error()) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("a: add entry"))
	return theme.Pane.Width(max(m.width-4, 20)).Render(sb.String())
}

// summaryCards mirrors the dashboard defaults: mood 7, sleep 7h and
// stress 5 when no entry exists yet.
func (m Model) summaryCards() string {
	mood, sleep, stress := 7, 7.0, 5
	if latest := m.window.Latest; latest != nil {
		mood, sleep, stress = latest.Mood, latest.SleepHours, latest.StressLevel
	}
	sleepNote := "could be better"
	if sleep >= 7 {
		sleepNote = "good"
	}
	stressNote := "moderate"
	if stress <= 4 {
		stressNote = "low"
	}
	emoji := moodEmojis[clamp(mood, 1, 10)-1]

	cards := []string{
		theme.MoodFg.Render(fmt.Sprintf("♥ Mood %d/10 %s", mood, emoji)),
		theme.SleepFg.Render(fmt.Sprintf("☾ Sleep %.1fh (%s)", sleep, sleepNote)),
		theme.StressFg.Render(fmt.Sprintf("⚡ Stress %d/10 (%s)", stress, stressNote)),
	}
	return strings.Join(cards, theme.Muted.Render("   │   "))
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
	sb.WriteString(theme.Muted.Render("stress ") + components.Sparkline(stresses, 10, theme.StressFg) + "\n")
	first := m.window.Series[0].Date
	last := m.window.Series[len(m.window.Series)-1].Date
	sb.WriteString(theme.Muted.Render(first + " … " + last))
	return sb.String()
}

func (m Model) formView() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Today's entry") + "\n\n")

	sb.WriteString(label("Mood (1-10)", m.form.focus == fieldMood) + " " + m.form.mood.View() + "\n")
	sb.WriteString(label("Sleep hours", m.form.focus == fieldSleep) + " " + m.form.sleep.View() + "\n")
	sb.WriteString(label("Stress (1-10)", m.form.focus == fieldStress) + " " + m.form.stress.View() + "\n\n")

	sb.WriteString(label("Activities", m.form.focus == fieldActivities) + "\n")
	for i, opt := range activityOptions {
		marker := "[ ]"
		style := theme.Muted
		if m.form.selected[opt.id] {
			marker = "[x]"
			style = theme.Good
		}
		sb.WriteString(style.Render(fmt.Sprintf("  %d %s %s", i+1, marker, opt.label)) + "\n")
	}
	sb.WriteString("\n" + label("Notes", m.form.focus == fieldNotes) + "\n" + m.form.notes.View() + "\n")

	if m.submitting {
		sb.WriteString("\n" + m.spinner.View() + " Saving…")
	} else if m.loadErr != nil {
		sb.WriteString("\n" + theme.Warn.Render(m.loadErr.Error()))
	}
	sb.WriteString("\n\n" + theme.Muted.Render("tab: next field  1-6: toggle activity  ctrl+s: save  esc: cancel"))
	return theme.PaneActive.Width(max(m.width-4, 20)).Render(sb.String())
}

func label(text string, focused bool) string {
	if focused {
		return theme.Title.Render("▸ " + text)
	}
	return theme.Muted.Render("  " + text)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
