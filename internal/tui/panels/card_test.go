package panels

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func newTestCard(t *testing.T) TopicCard {
	t.Helper()
	card, err := NewTopicCard().SetContent("Finance", "42", []string{"Doc A", "Doc B", "Doc C"})
	if err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	return card
}

// runCmd executes a panel command and returns the resulting message.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

func TestCardStartsUnselected(t *testing.T) {
	card := newTestCard(t)
	if got := card.Selected(); got != noSelection {
		t.Errorf("Selected() = %d, want none", got)
	}
	if _, ok := card.SelectedDoc(); ok {
		t.Error("SelectedDoc() reported a selection on a fresh card")
	}
}

func TestSetContentValidation(t *testing.T) {
	if _, err := NewTopicCard().SetContent("", "42", nil); err == nil {
		t.Error("SetContent with empty title: expected error")
	}
	if _, err := NewTopicCard().SetContent("Finance", "", nil); err == nil {
		t.Error("SetContent with empty percent: expected error")
	}
	if _, err := NewTopicCard().SetContent("Finance", "42", nil); err != nil {
		t.Errorf("SetContent with empty docs: %v", err)
	}
}

func TestActivateSelects(t *testing.T) {
	card := newTestCard(t)

	card, cmd := card.activate(1)
	if got := card.Selected(); got != 1 {
		t.Errorf("Selected() = %d, want 1", got)
	}

	msg, ok := runCmd(t, cmd).(DocActivatedMsg)
	if !ok {
		t.Fatalf("expected DocActivatedMsg, got %T", msg)
	}
	if msg.Index != 1 || msg.Content != "Doc B" || !msg.Selected {
		t.Errorf("msg = %+v, want index 1, Doc B, selected", msg)
	}
}

func TestActivateTwiceDeselects(t *testing.T) {
	card := newTestCard(t)

	card, _ = card.activate(1)
	card, cmd := card.activate(1)

	if got := card.Selected(); got != noSelection {
		t.Errorf("Selected() after toggle pair = %d, want none", got)
	}

	msg := runCmd(t, cmd).(DocActivatedMsg)
	if msg.Selected {
		t.Error("msg.Selected = true after deselect")
	}
	if msg.Index != 1 {
		t.Errorf("msg.Index = %d, want 1", msg.Index)
	}
}

func TestActivateReplacesSelection(t *testing.T) {
	card := newTestCard(t)

	card, _ = card.activate(1)
	card, _ = card.activate(0)

	// Row 0 took over the mark; row 1 lost it.
	if got := card.Selected(); got != 0 {
		t.Errorf("Selected() = %d, want 0", got)
	}
}

func TestActivateOutOfRange(t *testing.T) {
	card := newTestCard(t)

	card, cmd := card.activate(7)
	if cmd != nil {
		t.Error("activate out of range returned a command")
	}
	if got := card.Selected(); got != noSelection {
		t.Errorf("Selected() = %d, want none", got)
	}
}

func TestSetContentResetsSelection(t *testing.T) {
	card := newTestCard(t)
	card, _ = card.activate(2)

	card, err := card.SetContent("Health", "58", []string{"Other"})
	if err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	if got := card.Selected(); got != noSelection {
		t.Errorf("Selected() after topic change = %d, want none", got)
	}
	if got := card.Cursor(); got != 0 {
		t.Errorf("Cursor() after topic change = %d, want 0", got)
	}
}

func TestEnterTogglesAtCursor(t *testing.T) {
	card := newTestCard(t)

	panel, cmd := card.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	card = panel.(TopicCard)
	if got := card.Selected(); got != 0 {
		t.Errorf("Selected() = %d, want 0", got)
	}
	if cmd == nil {
		t.Fatal("expected DocActivatedMsg command")
	}

	panel, _ = card.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	card = panel.(TopicCard)
	if got := card.Selected(); got != noSelection {
		t.Errorf("Selected() after second enter = %d, want none", got)
	}
}

func TestCursorMovesIndependentlyOfSelection(t *testing.T) {
	card := newTestCard(t)
	card, _ = card.activate(0)

	panel, _ := card.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	card = panel.(TopicCard)

	if got := card.Cursor(); got != 1 {
		t.Errorf("Cursor() = %d, want 1", got)
	}
	if got := card.Selected(); got != 0 {
		t.Errorf("Selected() = %d, want 0 (cursor move must not change it)", got)
	}
}

func TestCardViewRendersAllRows(t *testing.T) {
	card := newTestCard(t)
	view := card.View(60, 20, true)

	if !strings.Contains(view, "Finance") {
		t.Error("view missing header title")
	}
	if !strings.Contains(view, "42% of the Territory") {
		t.Error("view missing territory sub-header")
	}
	for _, doc := range []string{"Doc A", "Doc B", "Doc C"} {
		if !strings.Contains(view, doc) {
			t.Errorf("view missing row %q", doc)
		}
	}
}

func TestCardViewEmptyDocs(t *testing.T) {
	card, err := NewTopicCard().SetContent("Finance", "42", nil)
	if err != nil {
		t.Fatalf("SetContent: %v", err)
	}

	view := card.View(60, 20, false)
	if !strings.Contains(view, "42% of the Territory") {
		t.Error("view missing territory sub-header")
	}
	if !strings.Contains(view, "No documents") {
		t.Error("view missing empty placeholder")
	}
}

func TestCardViewBeforeContent(t *testing.T) {
	view := NewTopicCard().View(60, 20, false)
	if !strings.Contains(view, "Select a topic") {
		t.Error("view missing placeholder before any topic is set")
	}
}
