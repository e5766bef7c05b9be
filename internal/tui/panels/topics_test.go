package panels

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/bunkatopics/territory/internal/topics"
)

func testTopics() []topics.Topic {
	return []topics.Topic{
		{ID: "bt-1", Name: "Health", Size: 58, Percent: 58},
		{ID: "bt-0", Name: "Finance", Size: 42, Percent: 42},
		{ID: "bt-2", Name: "Sport", Size: 10, Percent: 10},
	}
}

func TestSetTopicsSelectsFirst(t *testing.T) {
	l := NewTopicList().SetTopics(testTopics())

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	sel := l.Selected()
	if sel == nil || sel.Name != "Health" {
		t.Errorf("Selected() = %v, want Health", sel)
	}
}

func TestSetTopicsEmpty(t *testing.T) {
	l := NewTopicList().SetTopics(nil)
	if l.Selected() != nil {
		t.Error("Selected() != nil for empty list")
	}
}

func TestFilterNarrowsAndResets(t *testing.T) {
	l := NewTopicList().SetTopics(testTopics())

	panel, _ := l.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	l = panel.(TopicList)
	if l.Cursor() != 1 {
		t.Fatalf("Cursor() = %d, want 1", l.Cursor())
	}

	l = l.SetFilter("fin")
	if l.Len() != 1 {
		t.Fatalf("Len() after filter = %d, want 1", l.Len())
	}
	if l.Cursor() != 0 {
		t.Errorf("Cursor() after filter = %d, want 0", l.Cursor())
	}
	sel := l.Selected()
	if sel == nil || sel.Name != "Finance" {
		t.Errorf("Selected() = %v, want Finance", sel)
	}

	l = l.ClearFilter()
	if l.Len() != 3 {
		t.Errorf("Len() after clear = %d, want 3", l.Len())
	}
}

func TestFilterSurvivesSetTopics(t *testing.T) {
	l := NewTopicList().SetTopics(testTopics()).SetFilter("health")
	l = l.SetTopics(testTopics())

	if l.Len() != 1 {
		t.Errorf("Len() = %d, want filter still applied", l.Len())
	}
}

func TestNavigationEmitsSelection(t *testing.T) {
	l := NewTopicList().SetTopics(testTopics())

	panel, cmd := l.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	l = panel.(TopicList)
	if cmd == nil {
		t.Fatal("expected TopicSelectedMsg command")
	}

	msg, ok := cmd().(TopicSelectedMsg)
	if !ok {
		t.Fatalf("expected TopicSelectedMsg, got %T", cmd())
	}
	if msg.Topic.Name != "Finance" {
		t.Errorf("selected topic = %q, want Finance", msg.Topic.Name)
	}
}

func TestTopicListView(t *testing.T) {
	l := NewTopicList().SetTopics(testTopics())
	view := l.View(40, 20, true)

	for _, name := range []string{"Health", "Finance", "Sport"} {
		if !strings.Contains(view, name) {
			t.Errorf("view missing topic %q", name)
		}
	}
	if !strings.Contains(view, "Topics (3)") {
		t.Error("view missing topic count in title")
	}
}

func TestTopicListViewFilterIndicator(t *testing.T) {
	l := NewTopicList().SetTopics(testTopics()).SetFilter("zzz")
	view := l.View(40, 20, true)

	if !strings.Contains(view, "filter: zzz") {
		t.Error("view missing filter indicator")
	}
	if !strings.Contains(view, "No matching topics") {
		t.Error("view missing no-match placeholder")
	}
}
