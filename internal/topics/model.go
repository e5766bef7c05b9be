// Package topics defines the data model for a Bunka topic-model export:
// a set of documents projected onto a 2D map (the "territory") and the
// topics that partition it, each with a share of the map and a ranked
// list of top documents.
package topics

import (
	"fmt"
	"sort"
	"strconv"
)

// Document is a single document placed on the territory map.
type Document struct {
	ID      string  `json:"doc_id"`
	Content string  `json:"content"`
	TopicID string  `json:"topic_id,omitempty"`
	Rank    int     `json:"rank,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
}

// Topic is a cluster of documents on the map.
type Topic struct {
	ID      string   `json:"topic_id"`
	Name    string   `json:"name"`
	Size    int      `json:"size"`
	Percent float64  `json:"percent,omitempty"`
	TermIDs []string `json:"term_id,omitempty"`
	TopDocs []string `json:"top_doc_content,omitempty"`
	X       float64  `json:"x_centroid,omitempty"`
	Y       float64  `json:"y_centroid,omitempty"`
}

// Export is a complete topic-model export.
type Export struct {
	Topics []Topic    `json:"topics"`
	Docs   []Document `json:"docs"`
}

// TopicByID returns the topic with the given ID, or nil.
func (e *Export) TopicByID(id string) *Topic {
	for i := range e.Topics {
		if e.Topics[i].ID == id {
			return &e.Topics[i]
		}
	}
	return nil
}

// Repartition fills in Percent for topics that lack one, as each topic's
// share of the summed topic sizes. Existing non-zero values are kept so
// exports that carry their own repartition stay untouched.
func Repartition(topics []Topic) {
	total := 0
	for _, t := range topics {
		total += t.Size
	}
	if total <= 0 {
		return
	}
	for i := range topics {
		if topics[i].Percent == 0 && topics[i].Size > 0 {
			topics[i].Percent = float64(topics[i].Size) / float64(total) * 100
		}
	}
}

// FormatPercent renders a share as a display string with at most one
// decimal place, trimming a trailing ".0" ("42", "7.5").
func FormatPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', 1, 64)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		s = s[:len(s)-2]
	}
	return s
}

// Label returns the topic's list-row label: name plus its share.
func (t Topic) Label() string {
	if t.Percent == 0 {
		return t.Name
	}
	return fmt.Sprintf("%s  %s%%", t.Name, FormatPercent(t.Percent))
}

// sortBySize orders topics largest first, name as tiebreaker.
func sortBySize(topics []Topic) {
	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].Size != topics[j].Size {
			return topics[i].Size > topics[j].Size
		}
		return topics[i].Name < topics[j].Name
	})
}
