package tui

import "github.com/bunkatopics/territory/internal/topics"

// exportLoadedMsg is sent when the dataset has been loaded.
type exportLoadedMsg struct {
	export *topics.Export
}

// errMsg is sent when a load or other operation fails.
type errMsg struct {
	err error
}

// toastMsg is sent to display a temporary notification.
type toastMsg struct {
	message string
	isError bool
}

// clearToastMsg is sent to dismiss the toast notification.
type clearToastMsg struct{}

// externalExitMsg is sent after returning from an external process (editor).
type externalExitMsg struct {
	err error
}

// datasetChangedMsg is sent by the file watcher when the dataset file
// changes on disk.
type datasetChangedMsg struct{}

// watchErrMsg is sent when the file watcher fails.
type watchErrMsg struct {
	err error
}
