// Package dataset resolves a dataset reference — an export JSON file, an
// ingested SQLite database, or the HTTP address of a running Bunka
// server — and loads it into an export.
package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bunkatopics/territory/internal/store"
	"github.com/bunkatopics/territory/internal/topics"
)

// Kind identifies how a dataset reference is loaded.
type Kind int

const (
	KindFile Kind = iota // export JSON on disk
	KindDB               // SQLite database produced by ingest
	KindHTTP             // running Bunka server
)

// Source is a resolved dataset reference.
type Source struct {
	Ref  string
	Kind Kind
}

// Resolve classifies ref. Local references must exist on disk.
func Resolve(ref string) (Source, error) {
	if ref == "" {
		return Source{}, fmt.Errorf("no dataset given")
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return Source{Ref: ref, Kind: KindHTTP}, nil
	}

	if _, err := os.Stat(ref); err != nil {
		return Source{}, fmt.Errorf("dataset %s: %w", ref, err)
	}

	switch strings.ToLower(filepath.Ext(ref)) {
	case ".db", ".sqlite", ".sqlite3":
		return Source{Ref: ref, Kind: KindDB}, nil
	default:
		return Source{Ref: ref, Kind: KindFile}, nil
	}
}

// Load loads the export behind the source.
func (s Source) Load(ctx context.Context) (*topics.Export, error) {
	switch s.Kind {
	case KindHTTP:
		return topics.NewClient(s.Ref).Export(ctx)
	case KindDB:
		st, err := store.Open(s.Ref)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Export()
	default:
		return topics.Load(s.Ref)
	}
}

// Watchable reports whether the source is a local file whose changes can
// be observed.
func (s Source) Watchable() bool {
	return s.Kind != KindHTTP
}

// String describes the source for display and logs.
func (s Source) String() string {
	switch s.Kind {
	case KindHTTP:
		return s.Ref
	default:
		return filepath.Base(s.Ref)
	}
}
