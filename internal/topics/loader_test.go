package topics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `{
	"topics": [
		{"topic_id": "bt-0", "name": "Finance", "size": 42, "term_id": ["market", "bank"]},
		{"topic_id": "bt-1", "name": "Health", "size": 58}
	],
	"docs": [
		{"doc_id": "d1", "content": "Doc A", "topic_id": "bt-0", "rank": 1},
		{"content": "Doc B", "topic_id": "bt-0", "rank": 2},
		{"doc_id": "d3", "content": "Doc C", "topic_id": "bt-1", "rank": 1}
	]
}`

func TestDecodeSample(t *testing.T) {
	ex, err := Decode(strings.NewReader(sampleExport))
	require.NoError(t, err)

	require.Len(t, ex.Topics, 2)
	require.Len(t, ex.Docs, 3)

	// Ordered largest first.
	assert.Equal(t, "Health", ex.Topics[0].Name)
	assert.Equal(t, "Finance", ex.Topics[1].Name)

	// Shares computed from the summed sizes.
	assert.InDelta(t, 58.0, ex.Topics[0].Percent, 0.001)
	assert.InDelta(t, 42.0, ex.Topics[1].Percent, 0.001)
}

func TestDecodeAssignsMissingDocIDs(t *testing.T) {
	ex, err := Decode(strings.NewReader(sampleExport))
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, d := range ex.Docs {
		assert.NotEmpty(t, d.ID)
		assert.False(t, seen[d.ID], "duplicate doc id %q", d.ID)
		seen[d.ID] = true
	}
}

func TestDecodeFillsTopDocs(t *testing.T) {
	ex, err := Decode(strings.NewReader(sampleExport))
	require.NoError(t, err)

	finance := ex.TopicByID("bt-0")
	require.NotNil(t, finance)
	assert.Equal(t, []string{"Doc A", "Doc B"}, finance.TopDocs)
}

func TestDecodeKeepsProvidedTopDocs(t *testing.T) {
	in := `{
		"topics": [{"topic_id": "t", "name": "T", "size": 1, "top_doc_content": ["given"]}],
		"docs": [{"doc_id": "d", "content": "other", "topic_id": "t"}]
	}`
	ex, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"given"}, ex.Topics[0].TopDocs)
}

func TestDecodeFillsSizesFromDocs(t *testing.T) {
	in := `{
		"topics": [{"topic_id": "t", "name": "T"}],
		"docs": [
			{"doc_id": "a", "content": "a", "topic_id": "t"},
			{"doc_id": "b", "content": "b", "topic_id": "t"}
		]
	}`
	ex, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, ex.Topics[0].Size)
	assert.InDelta(t, 100.0, ex.Topics[0].Percent, 0.001)
}

func TestDecodeRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no topics", `{"topics": [], "docs": []}`, "no topics"},
		{"missing name", `{"topics": [{"topic_id": "t", "size": 1}]}`, "missing name"},
		{"negative size", `{"topics": [{"topic_id": "t", "name": "T", "size": -1}]}`, "negative size"},
		{"duplicate id", `{"topics": [{"topic_id": "t", "name": "A"}, {"topic_id": "t", "name": "B"}]}`, "duplicate topic id"},
		{"unknown topic ref", `{"topics": [{"topic_id": "t", "name": "T"}], "docs": [{"doc_id": "d", "content": "x", "topic_id": "zz"}]}`, "unknown topic id"},
		{"not json", `nope`, "invalid character"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "42", FormatPercent(42.0))
	assert.Equal(t, "7.5", FormatPercent(7.5))
	assert.Equal(t, "0.1", FormatPercent(0.13))
	assert.Equal(t, "100", FormatPercent(100))
}

func TestRepartitionKeepsExistingShares(t *testing.T) {
	ts := []Topic{
		{ID: "a", Name: "A", Size: 5, Percent: 33.3},
		{ID: "b", Name: "B", Size: 5},
	}
	Repartition(ts)
	assert.InDelta(t, 33.3, ts[0].Percent, 0.001)
	assert.InDelta(t, 50.0, ts[1].Percent, 0.001)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/export.json")
	require.Error(t, err)
}
