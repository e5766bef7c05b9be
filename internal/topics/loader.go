package topics

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
)

// Load reads and decodes an export JSON file.
func Load(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	ex, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return ex, nil
}

// Decode parses an export from r and normalizes it: document IDs are
// assigned where missing, shares are computed where the export omits
// them, top-doc lists are derived from the ranked documents, and topics
// are ordered largest first.
func Decode(r io.Reader) (*Export, error) {
	var ex Export
	dec := json.NewDecoder(r)
	if err := dec.Decode(&ex); err != nil {
		return nil, err
	}

	if err := validate(&ex); err != nil {
		return nil, err
	}

	for i := range ex.Docs {
		if ex.Docs[i].ID == "" {
			ex.Docs[i].ID = uuid.NewString()
		}
	}

	fillSizes(&ex)
	Repartition(ex.Topics)
	fillTopDocs(&ex)
	sortBySize(ex.Topics)

	return &ex, nil
}

// validate rejects exports that violate the model's invariants.
func validate(ex *Export) error {
	if len(ex.Topics) == 0 {
		return fmt.Errorf("export contains no topics")
	}

	known := make(map[string]bool, len(ex.Topics))
	for i, t := range ex.Topics {
		if t.Name == "" {
			return fmt.Errorf("topic %d (%s): missing name", i, t.ID)
		}
		if t.Size < 0 {
			return fmt.Errorf("topic %q: negative size %d", t.Name, t.Size)
		}
		if t.ID != "" {
			if known[t.ID] {
				return fmt.Errorf("duplicate topic id %q", t.ID)
			}
			known[t.ID] = true
		}
	}

	for i, d := range ex.Docs {
		if d.TopicID != "" && !known[d.TopicID] {
			return fmt.Errorf("doc %d (%s): unknown topic id %q", i, d.ID, d.TopicID)
		}
	}

	return nil
}

// fillSizes derives topic sizes from document membership when the export
// carries docs but no sizes.
func fillSizes(ex *Export) {
	if len(ex.Docs) == 0 {
		return
	}
	counts := make(map[string]int)
	for _, d := range ex.Docs {
		counts[d.TopicID]++
	}
	for i := range ex.Topics {
		if ex.Topics[i].Size == 0 {
			ex.Topics[i].Size = counts[ex.Topics[i].ID]
		}
	}
}

// fillTopDocs builds each topic's ranked top-doc contents from the
// document list when the export does not carry top_doc_content itself.
func fillTopDocs(ex *Export) {
	if len(ex.Docs) == 0 {
		return
	}

	byTopic := make(map[string][]Document)
	for _, d := range ex.Docs {
		byTopic[d.TopicID] = append(byTopic[d.TopicID], d)
	}

	for i := range ex.Topics {
		t := &ex.Topics[i]
		if len(t.TopDocs) > 0 {
			continue
		}
		docs := byTopic[t.ID]
		sort.SliceStable(docs, func(a, b int) bool { return docs[a].Rank < docs[b].Rank })
		for _, d := range docs {
			t.TopDocs = append(t.TopDocs, d.Content)
		}
	}
}
