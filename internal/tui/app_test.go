package tui

import (
	"reflect"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/bunkatopics/territory/internal/config"
	"github.com/bunkatopics/territory/internal/dataset"
	"github.com/bunkatopics/territory/internal/topics"
	"github.com/bunkatopics/territory/internal/tui/components"
	"github.com/bunkatopics/territory/internal/tui/panels"
)

func testExport() *topics.Export {
	return &topics.Export{
		Topics: []topics.Topic{
			{ID: "bt-1", Name: "Health", Size: 58, Percent: 58, TopDocs: []string{"Doc A", "Doc B", "Doc C"}},
			{ID: "bt-0", Name: "Finance", Size: 42, Percent: 42, TopDocs: []string{"Doc D"}},
		},
		Docs: []topics.Document{
			{ID: "d1", Content: "Doc A", TopicID: "bt-1"},
			{ID: "d2", Content: "Doc B", TopicID: "bt-1"},
			{ID: "d3", Content: "Doc D", TopicID: "bt-0"},
		},
	}
}

// newTestApp builds an App backed by a non-watchable source so tests never
// touch the filesystem.
func newTestApp() App {
	cfg := config.Default()
	src := dataset.Source{Ref: "http://example.test/export", Kind: dataset.KindHTTP}
	return NewApp(cfg, src, nil)
}

func loadTestExport(t *testing.T, m App) App {
	t.Helper()
	model, _ := m.Update(exportLoadedMsg{export: testExport()})
	return model.(App)
}

func TestExportLoadedPopulatesPanels(t *testing.T) {
	m := loadTestExport(t, newTestApp())

	if m.topicList.Len() != 2 {
		t.Fatalf("topic list length = %d, want 2", m.topicList.Len())
	}
	if m.selectedTopic == nil || m.selectedTopic.Name != "Health" {
		t.Errorf("selected topic = %v, want Health", m.selectedTopic)
	}
	if m.card.Docs() != 3 {
		t.Errorf("card docs = %d, want 3", m.card.Docs())
	}
	if m.loading {
		t.Error("loading still true after export loaded")
	}
}

func TestTopDocsLimitApplied(t *testing.T) {
	m := newTestApp()
	m.config.UI.TopDocs = 2
	m = loadTestExport(t, m)

	if m.card.Docs() != 2 {
		t.Errorf("card docs = %d, want 2 (limited by config)", m.card.Docs())
	}
}

func TestDocActivatedUpdatesDetail(t *testing.T) {
	m := loadTestExport(t, newTestApp())

	model, _ := m.Update(panels.DocActivatedMsg{Index: 1, Content: "Doc B", Selected: true})
	m = model.(App)
	if !m.docSelected || m.selectedDoc != "Doc B" {
		t.Errorf("detail = (%v, %q), want selected Doc B", m.docSelected, m.selectedDoc)
	}
	if m.activeTab != 1 {
		t.Errorf("activeTab = %d, want 1 (document tab)", m.activeTab)
	}

	model, _ = m.Update(panels.DocActivatedMsg{Index: 1, Content: "Doc B", Selected: false})
	m = model.(App)
	if m.docSelected || m.selectedDoc != "" {
		t.Errorf("detail = (%v, %q), want cleared", m.docSelected, m.selectedDoc)
	}
}

func TestTopicChangeClearsDocSelection(t *testing.T) {
	m := loadTestExport(t, newTestApp())

	model, _ := m.Update(panels.DocActivatedMsg{Index: 0, Content: "Doc A", Selected: true})
	m = model.(App)

	model, _ = m.Update(panels.TopicSelectedMsg{Topic: testExport().Topics[1]})
	m = model.(App)

	if m.docSelected {
		t.Error("doc selection survived a topic change")
	}
	if m.selectedTopic == nil || m.selectedTopic.Name != "Finance" {
		t.Errorf("selected topic = %v, want Finance", m.selectedTopic)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m := loadTestExport(t, newTestApp())

	want := []Focus{FocusTopicCard, FocusDetail, FocusTopicList}
	for _, w := range want {
		model, _ := m.handleKey(tea.KeyPressMsg{Code: tea.KeyTab})
		m = model.(App)
		if m.focus != w {
			t.Fatalf("focus = %v, want %v", m.focus, w)
		}
	}
}

func TestFilterResultAppliesToList(t *testing.T) {
	m := loadTestExport(t, newTestApp())

	model, _ := m.Update(components.InputResult{ID: "topic-filter", Value: "fin"})
	m = model.(App)

	if m.topicList.Len() != 1 {
		t.Fatalf("topic list length = %d, want 1", m.topicList.Len())
	}
	if m.selectedTopic == nil || m.selectedTopic.Name != "Finance" {
		t.Errorf("selected topic = %v, want Finance", m.selectedTopic)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("alpha beta gamma", 10)
	want := []string{"alpha beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrapText = %v, want %v", got, want)
	}

	if lines := wrapText("anything", 0); lines != nil {
		t.Errorf("wrapText with zero width = %v, want nil", lines)
	}
}
