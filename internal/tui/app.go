package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/bunkatopics/territory/internal/config"
	"github.com/bunkatopics/territory/internal/dataset"
	"github.com/bunkatopics/territory/internal/topics"
	"github.com/bunkatopics/territory/internal/tui/components"
	"github.com/bunkatopics/territory/internal/tui/panels"
	"github.com/bunkatopics/territory/internal/tui/theme"
)

// Focus tracks which panel has keyboard focus.
type Focus int

const (
	FocusTopicList Focus = iota
	FocusTopicCard
	FocusDetail
)

// panelCount is the number of focusable panels.
const panelCount = 3

// App is the root bubbletea model for the three-panel layout: the topic
// list on the left, the topic card on the top right, and the detail panel
// below it.
type App struct {
	config *config.Config
	logger *slog.Logger
	source dataset.Source

	focus         Focus
	width, height int

	// Sub-model panels.
	topicList panels.TopicList
	card      panels.TopicCard

	// Data kept at the app level for cross-panel concerns.
	export        *topics.Export
	selectedTopic *topics.Topic
	selectedDoc   string
	docSelected   bool
	activeTab     int // 1-3 for detail section tabs

	// UI state
	toast       string
	toastIsErr  bool
	loading     bool
	searching   bool
	searchInput components.Input
	help        HelpModal
	watcher     *watcher

	// Keymaps
	globalKeys GlobalKeyMap
	navKeys    NavKeyMap
	tabKeys    TabKeyMap
}

// NewApp creates a new App model reading from the given dataset source.
func NewApp(cfg *config.Config, src dataset.Source, logger *slog.Logger) App {
	if logger == nil {
		logger = slog.Default()
	}

	m := App{
		config:     cfg,
		logger:     logger,
		source:     src,
		focus:      FocusTopicList,
		activeTab:  1,
		topicList:  panels.NewTopicList().SetLoading(true),
		card:       panels.NewTopicCard(),
		help:       NewHelpModal(),
		loading:    true,
		globalKeys: DefaultGlobalKeyMap(),
		navKeys:    DefaultNavKeyMap(),
		tabKeys:    DefaultTabKeyMap(),
	}

	if src.Watchable() {
		w, err := newWatcher(src.Ref)
		if err != nil {
			logger.Warn("dataset watch disabled", "source", src.String(), "err", err)
		} else {
			m.watcher = w
		}
	}

	return m
}

// Init loads the dataset and, for file-backed sources, starts watching it.
func (m App) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadExport()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.next())
	}
	return tea.Batch(cmds...)
}

// Update handles all incoming messages.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if m.help.Active() {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		if m.searching {
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case components.InputResult:
		m.searching = false
		m.topicList = m.topicList.SetFilter(strings.TrimSpace(msg.Value))
		return m.applyTopic(m.topicList.Selected())

	case components.InputCancelled:
		m.searching = false
		return m, nil

	case exportLoadedMsg:
		m.loading = false
		m.export = msg.export
		m.topicList = m.topicList.SetTopics(msg.export.Topics).SetLoading(false)
		return m.applyTopic(m.topicList.Selected())

	// Panel-emitted messages: the cursor landed on a topic.
	case panels.TopicSelectedMsg:
		t := msg.Topic
		return m.applyTopic(&t)

	// Panel-emitted messages: a document row was toggled on the card.
	case panels.DocActivatedMsg:
		m.docSelected = msg.Selected
		if msg.Selected {
			m.selectedDoc = msg.Content
			m.activeTab = 1
		} else {
			m.selectedDoc = ""
		}
		return m, nil

	case datasetChangedMsg:
		m.loading = true
		m.topicList = m.topicList.SetLoading(true)
		m.toast = "Dataset changed, reloading..."
		m.toastIsErr = false
		cmds := []tea.Cmd{m.loadExport(), m.clearToastAfter(3 * time.Second)}
		if m.watcher != nil {
			cmds = append(cmds, m.watcher.next())
		}
		return m, tea.Batch(cmds...)

	case watchErrMsg:
		m.logger.Warn("dataset watch error", "err", msg.err)
		return m, nil

	case externalExitMsg:
		if msg.err != nil {
			m.toast = fmt.Sprintf("Editor failed: %v", msg.err)
			m.toastIsErr = true
			return m, m.clearToastAfter(5 * time.Second)
		}
		return m, nil

	case errMsg:
		m.loading = false
		m.topicList = m.topicList.SetLoading(false)
		m.toast = fmt.Sprintf("Error: %v", msg.err)
		m.toastIsErr = true
		return m, m.clearToastAfter(5 * time.Second)

	case toastMsg:
		m.toast = msg.message
		m.toastIsErr = msg.isError
		return m, m.clearToastAfter(3 * time.Second)

	case clearToastMsg:
		m.toast = ""
		m.toastIsErr = false
		return m, nil
	}

	return m, nil
}

// handleKey processes key events, routing to global keys first, then
// focus-specific keys.
func (m App) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Global keys take priority.
	switch {
	case key.Matches(msg, m.globalKeys.Quit):
		if m.watcher != nil {
			m.watcher.close()
		}
		return m, tea.Quit
	case key.Matches(msg, m.globalKeys.Help):
		m.help = m.help.Toggle()
		return m, nil
	case key.Matches(msg, m.globalKeys.Tab):
		m.focus = (m.focus + 1) % panelCount
		return m, nil
	case key.Matches(msg, m.globalKeys.ShiftTab):
		m.focus = (m.focus + panelCount - 1) % panelCount
		return m, nil
	case key.Matches(msg, m.globalKeys.Reload):
		m.loading = true
		m.topicList = m.topicList.SetLoading(true)
		return m, m.loadExport()
	case key.Matches(msg, m.globalKeys.Search):
		m.searching = true
		m.searchInput = components.NewInput("topic-filter", "Filter topics", "topic name")
		return m, nil
	case key.Matches(msg, m.globalKeys.Editor):
		return m.openEditor()
	}

	// Panel-specific keys.
	switch m.focus {
	case FocusTopicList:
		return m.handleTopicListKey(msg)
	case FocusTopicCard:
		return m.handleTopicCardKey(msg)
	case FocusDetail:
		return m.handleDetailKey(msg)
	}

	return m, nil
}

// handleTopicListKey processes keys when the topic list panel is focused.
func (m App) handleTopicListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.navKeys.Enter):
		m.focus = FocusTopicCard
		return m, nil
	case key.Matches(msg, m.navKeys.Back):
		if m.topicList.Filter() != "" {
			m.topicList = m.topicList.ClearFilter()
			return m.applyTopic(m.topicList.Selected())
		}
		return m, nil
	}

	// Delegate navigation keys to the topic list panel.
	panel, cmd := m.topicList.Update(msg)
	m.topicList = panel.(panels.TopicList)
	return m, cmd
}

// handleTopicCardKey processes keys when the topic card is focused.
func (m App) handleTopicCardKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.navKeys.Back) {
		m.focus = FocusTopicList
		return m, nil
	}

	// Delegate to the card panel; enter toggles row selection there.
	panel, cmd := m.card.Update(msg)
	m.card = panel.(panels.TopicCard)
	return m, cmd
}

// handleDetailKey processes keys when the detail panel is focused.
func (m App) handleDetailKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.navKeys.Back):
		m.focus = FocusTopicCard
		return m, nil

	// Section tab switching (1-3).
	case key.Matches(msg, m.tabKeys.Document):
		m.activeTab = 1
	case key.Matches(msg, m.tabKeys.Topic):
		m.activeTab = 2
	case key.Matches(msg, m.tabKeys.Terms):
		m.activeTab = 3
	}

	return m, nil
}

// applyTopic loads a topic into the card panel and clears any document
// selection carried over from the previous topic.
func (m App) applyTopic(t *topics.Topic) (tea.Model, tea.Cmd) {
	m.selectedTopic = t
	m.selectedDoc = ""
	m.docSelected = false

	if t == nil {
		m.card = panels.NewTopicCard()
		return m, nil
	}

	docs := t.TopDocs
	if limit := m.config.UI.TopDocs; limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}

	card, err := m.card.SetContent(t.Name, topics.FormatPercent(t.Percent), docs)
	if err != nil {
		return m, func() tea.Msg { return errMsg{err} }
	}
	m.card = card
	return m, nil
}

// openEditor opens the selected document in the configured editor.
func (m App) openEditor() (tea.Model, tea.Cmd) {
	if !m.docSelected {
		m.toast = "No document selected"
		m.toastIsErr = true
		return m, m.clearToastAfter(3 * time.Second)
	}
	return m, m.editorCmd()
}

// View renders the three-panel layout with a help bar at the bottom.
func (m App) View() tea.View {
	if m.width == 0 || m.height == 0 {
		v := tea.NewView("Loading...")
		v.AltScreen = true
		return v
	}

	// Reserve space for the help bar (1 line) and optional toast (1 line).
	helpHeight := 1
	toastHeight := 0
	if m.toast != "" {
		toastHeight = 1
	}
	contentHeight := m.height - helpHeight - toastHeight

	var mainContent string
	switch {
	case m.help.Active():
		mainContent = lipgloss.Place(m.width, contentHeight,
			lipgloss.Center, lipgloss.Center, m.help.View(m.width, contentHeight))
	case m.searching:
		mainContent = lipgloss.Place(m.width, contentHeight,
			lipgloss.Center, lipgloss.Center, m.searchInput.View(m.width, contentHeight))
	default:
		mainContent = m.renderPanels(contentHeight)
	}

	// Build the help bar.
	helpBar := m.renderHelpBar()

	// Assemble everything.
	var parts []string
	parts = append(parts, mainContent)
	if m.toast != "" {
		parts = append(parts, m.renderToast())
	}
	parts = append(parts, helpBar)

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// renderPanels renders the topic list, topic card and detail panels.
func (m App) renderPanels(contentHeight int) string {
	// Left panel = ~30% width, right panel = rest.
	leftWidth := m.width * 3 / 10
	if leftWidth < 20 {
		leftWidth = 20
	}
	rightWidth := m.width - leftWidth

	listPanel := m.topicList.View(leftWidth, contentHeight, m.focus == FocusTopicList)
	cardPanel := m.card.View(rightWidth, contentHeight/2, m.focus == FocusTopicCard)
	detailPanel := m.renderDetailPanel(rightWidth, contentHeight-contentHeight/2)

	rightSide := lipgloss.JoinVertical(lipgloss.Left, cardPanel, detailPanel)
	return lipgloss.JoinHorizontal(lipgloss.Top, listPanel, rightSide)
}

// renderDetailPanel renders the bottom-right detail panel.
func (m App) renderDetailPanel(width, height int) string {
	style := InactiveBorderStyle
	titleColor := colorSubtle
	if m.focus == FocusDetail {
		style = ActiveBorderStyle
		titleColor = colorPrimary
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Render(" " + m.tabName() + " ")

	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	if innerHeight < 0 {
		innerHeight = 0
	}

	var lines []string
	switch m.activeTab {
	case 2:
		lines = m.renderTopicTab(innerWidth)
	case 3:
		lines = m.renderTermsTab(innerWidth)
	default:
		lines = m.renderDocumentTab(innerWidth)
	}

	// Tab bar
	tabBar := m.renderTabBar(innerWidth)
	lines = append([]string{tabBar, ""}, lines...)

	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")

	return style.
		Width(innerWidth).
		Height(innerHeight).
		Render(title + "\n" + content)
}

// renderDocumentTab renders the selected document's full content.
func (m App) renderDocumentTab(width int) []string {
	if !m.docSelected {
		return []string{NormalItemStyle.Render("No document selected")}
	}
	var lines []string
	for _, line := range wrapText(m.selectedDoc, width) {
		lines = append(lines, NormalItemStyle.Render(line))
	}
	return lines
}

// renderTopicTab renders the selected topic's metadata.
func (m App) renderTopicTab(width int) []string {
	t := m.selectedTopic
	if t == nil {
		return []string{NormalItemStyle.Render("No topic selected")}
	}

	lines := []string{
		renderKV("Name", t.Name, width),
		renderKV("Share", topics.FormatPercent(t.Percent)+"%", width),
		renderKV("Size", fmt.Sprintf("%d", t.Size), width),
		renderKV("Terms", fmt.Sprintf("%d", len(t.TermIDs)), width),
	}
	if m.export != nil {
		lines = append(lines, renderKV("Documents", fmt.Sprintf("%d", m.topicDocCount(t.ID)), width))
	}
	if t.X != 0 || t.Y != 0 {
		lines = append(lines, renderKV("Centroid", fmt.Sprintf("%.2f, %.2f", t.X, t.Y), width))
	}
	return lines
}

// renderTermsTab renders the selected topic's specific terms.
func (m App) renderTermsTab(width int) []string {
	t := m.selectedTopic
	if t == nil {
		return []string{NormalItemStyle.Render("No topic selected")}
	}
	if len(t.TermIDs) == 0 {
		return []string{NormalItemStyle.Render("No terms")}
	}
	var lines []string
	for _, term := range t.TermIDs {
		lines = append(lines, NormalItemStyle.Render(theme.Truncate("- "+term, width)))
	}
	return lines
}

// topicDocCount counts the loaded documents assigned to a topic.
func (m App) topicDocCount(topicID string) int {
	n := 0
	for _, d := range m.export.Docs {
		if d.TopicID == topicID {
			n++
		}
	}
	return n
}

// renderTabBar renders the numbered section tabs at the top of the detail panel.
func (m App) renderTabBar(width int) string {
	tabs := []struct {
		num  int
		name string
	}{
		{1, "Document"}, {2, "Topic"}, {3, "Terms"},
	}

	var parts []string
	for _, t := range tabs {
		label := fmt.Sprintf("%d:%s", t.num, t.name)
		if t.num == m.activeTab {
			parts = append(parts, SelectedItemStyle.Render(label))
		} else {
			parts = append(parts, HelpBarStyle.Render(label))
		}
	}

	bar := strings.Join(parts, "  ")
	return theme.Truncate(bar, width)
}

// renderHelpBar renders the context-sensitive help bar at the bottom.
func (m App) renderHelpBar() string {
	var helpBindings []panels.HelpBinding

	switch m.focus {
	case FocusTopicList:
		helpBindings = m.topicList.HelpBindings()
	case FocusTopicCard:
		helpBindings = m.card.HelpBindings()
	case FocusDetail:
		helpBindings = []panels.HelpBinding{
			{Key: "1-3", Desc: "sections"},
			{Key: "e", Desc: "open in editor"},
			{Key: "esc", Desc: "back"},
			{Key: "tab", Desc: "switch panel"},
			{Key: "q", Desc: "quit"},
		}
	}

	var formatted []string
	for _, b := range helpBindings {
		formatted = append(formatted, helpBinding(b.Key, b.Desc))
	}

	bar := strings.Join(formatted, "  ")

	// Pad to full width.
	barWidth := lipgloss.Width(bar)
	if barWidth < m.width {
		bar += strings.Repeat(" ", m.width-barWidth)
	}

	return HelpBarStyle.Render(bar)
}

// renderToast renders the toast notification bar.
func (m App) renderToast() string {
	style := ToastStyle
	if m.toastIsErr {
		style = ToastErrorStyle
	}
	return style.Width(m.width).Render(m.toast)
}

// tabName returns the display name for the current active tab.
func (m App) tabName() string {
	switch m.activeTab {
	case 2:
		return "Topic"
	case 3:
		return "Terms"
	default:
		return "Document"
	}
}

// --- Commands (tea.Cmd factories) ---

// loadExport returns a command that loads the dataset from its source.
func (m App) loadExport() tea.Cmd {
	src := m.source
	logger := m.logger
	return func() tea.Msg {
		ex, err := src.Load(context.Background())
		if err != nil {
			logger.Error("load dataset", "source", src.String(), "err", err)
			return errMsg{err}
		}
		logger.Info("dataset loaded",
			"source", src.String(),
			"topics", len(ex.Topics),
			"docs", len(ex.Docs))
		return exportLoadedMsg{export: ex}
	}
}

// clearToastAfter returns a command that clears the toast after a delay.
func (m App) clearToastAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

// --- Helpers ---

// helpBinding formats a single key-description pair for the help bar.
func helpBinding(k, desc string) string {
	return HelpKeyStyle.Render(k) + " " + HelpBarStyle.Render(desc)
}

// renderKV renders a label-value pair for the detail panel.
func renderKV(label, value string, maxWidth int) string {
	if value == "" {
		value = "-"
	}
	l := LabelStyle.Render(label + ":")
	v := ValueStyle.Render(value)
	line := l + " " + v
	return theme.Truncate(line, maxWidth)
}

// wrapText word-wraps s to the given width, preserving paragraph breaks.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if lipgloss.Width(cur)+1+lipgloss.Width(w) > width {
				lines = append(lines, cur)
				cur = w
			} else {
				cur += " " + w
			}
		}
		lines = append(lines, cur)
	}
	return lines
}
