package tui

import (
	"os"
	"os/exec"

	tea "charm.land/bubbletea/v2"
)

// editorCmd returns a tea.Cmd that suspends the TUI and opens the selected
// document's content in the configured editor. The content is written to a
// temp file that is removed when the editor exits.
func (m App) editorCmd() tea.Cmd {
	editor := m.config.Editor.Command
	if editor == "" {
		editor = "vim"
	}

	f, err := os.CreateTemp("", "territory-doc-*.txt")
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	if _, err := f.WriteString(m.selectedDoc); err != nil {
		f.Close()
		os.Remove(f.Name())
		return func() tea.Msg { return errMsg{err} }
	}
	f.Close()

	path := f.Name()
	c := exec.Command(editor, path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		_ = os.Remove(path)
		return externalExitMsg{err}
	})
}
