package changes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleChanges = `Revision history for relnext

{{$NEXT}}

 [API CHANGES]

 - renamed the frobnicate endpoint
   across two lines

 [BUG FIXES]

1.2.3 2024-03-01

 - untagged fix

 [DOCUMENTATION]

 - expanded the readme

1.2.2 2024-02-14

 [BUG FIXES]

 - stop eating trailing newlines
`

func TestParse_Structure(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleChanges, DefaultPendingToken)
	require.NoError(t, err)

	releases := doc.Releases()
	require.Len(t, releases, 3)

	// Oldest first, pending last.
	assert.Equal(t, "1.2.2", releases[0].Name())
	assert.Equal(t, "1.2.3", releases[1].Name())
	assert.Equal(t, DefaultPendingToken, releases[2].Name())

	pending := doc.Pending()
	require.NotNil(t, pending)
	assert.Same(t, releases[2], pending)
}

func TestParse_Groups(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleChanges, DefaultPendingToken)
	require.NoError(t, err)

	pending := doc.Pending()
	assert.Equal(t, []string{"API CHANGES", "BUG FIXES"}, pending.GroupNames())
	assert.Equal(t, []string{"API CHANGES"}, pending.NonEmptyGroupNames())

	// Wrapped item lines join into a single item.
	assert.Equal(t,
		[]string{"renamed the frobnicate endpoint across two lines"},
		pending.ItemsInGroup("API CHANGES"))
	assert.Empty(t, pending.ItemsInGroup("BUG FIXES"))
	assert.Empty(t, pending.ItemsInGroup("NO SUCH GROUP"))

	// Ungrouped items land in the empty-name bucket.
	mid := doc.Releases()[1]
	assert.Equal(t, []string{"", "DOCUMENTATION"}, mid.GroupNames())
	assert.Equal(t, []string{"untagged fix"}, mid.ItemsInGroup(""))
}

func TestParse_RoundTripIsExact(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"full file":              sampleChanges,
		"no trailing newline":    "1.0.0 2024-01-01\n\n - fix",
		"preamble only":          "Revision history for nothing yet\n",
		"empty input":            "",
		"bare pending token":     "{{$NEXT}}\n",
		"crlf endings preserved": "1.0.0 2024-01-01\r\n\r\n - fix\r\n",
	}

	for name, text := range tests {
		text := text
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse(text, DefaultPendingToken)
			require.NoError(t, err)
			assert.Equal(t, text, doc.Serialize())
		})
	}
}

func TestParse_DuplicateGroupFails(t *testing.T) {
	t.Parallel()

	text := "{{$NEXT}}\n\n [BUG FIXES]\n\n - one\n\n [BUG FIXES]\n\n - two\n"

	_, err := Parse(text, DefaultPendingToken)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "declared twice")
}

func TestParse_CustomPendingToken(t *testing.T) {
	t.Parallel()

	doc, err := Parse("NEXT\n\n - something\n", "NEXT")
	require.NoError(t, err)

	pending := doc.Pending()
	require.NotNil(t, pending)
	assert.Equal(t, []string{""}, pending.NonEmptyGroupNames())
}

func TestDeleteGroup(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleChanges, DefaultPendingToken)
	require.NoError(t, err)

	pending := doc.Pending()
	pending.DeleteGroup("BUG FIXES")
	assert.Equal(t, []string{"API CHANGES"}, pending.GroupNames())

	// Deleting an absent group is a no-op.
	pending.DeleteGroup("BUG FIXES")
	assert.Equal(t, []string{"API CHANGES"}, pending.GroupNames())

	// The deleted group's lines are gone from the output.
	assert.NotContains(t, doc.Serialize(), "{{$NEXT}}\n\n [API CHANGES]\n\n - renamed the frobnicate endpoint\n   across two lines\n\n [BUG FIXES]")
	assert.Contains(t, doc.Serialize(), " - renamed the frobnicate endpoint")
}

func TestAddGroups(t *testing.T) {
	t.Parallel()

	doc, err := Parse("{{$NEXT}}\n\n [BUG FIXES]\n\n - a fix\n", DefaultPendingToken)
	require.NoError(t, err)

	pending := doc.Pending()
	pending.AddGroups([]string{"API CHANGES", "BUG FIXES", "DOCUMENTATION", "API CHANGES"})

	// Existing groups and repeated names are skipped.
	assert.Equal(t, []string{"BUG FIXES", "API CHANGES", "DOCUMENTATION"}, pending.GroupNames())
	assert.Equal(t, []string{"a fix"}, pending.ItemsInGroup("BUG FIXES"))

	out := doc.Serialize()
	assert.Contains(t, out, " [API CHANGES]")
	assert.Contains(t, out, " [DOCUMENTATION]")
}

func TestDeleteEmptyGroupsEverywhere(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleChanges, DefaultPendingToken)
	require.NoError(t, err)

	doc.DeleteEmptyGroupsEverywhere()

	pending := doc.Pending()
	assert.Equal(t, []string{"API CHANGES"}, pending.GroupNames())
	for _, r := range doc.Releases() {
		assert.Equal(t, r.NonEmptyGroupNames(), r.GroupNames())
	}
}

func TestStampPending(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleChanges, DefaultPendingToken)
	require.NoError(t, err)

	doc.StampPending("2.0.0", "2024-04-01")

	assert.Nil(t, doc.Pending())
	assert.Contains(t, doc.Serialize(), "2.0.0 2024-04-01\n")
	assert.NotContains(t, doc.Serialize(), DefaultPendingToken)

	releases := doc.Releases()
	assert.Equal(t, "2.0.0", releases[len(releases)-1].Name())
}

func TestInsertPending(t *testing.T) {
	t.Parallel()

	doc, err := Parse("Revision history for relnext\n\n1.0.0 2024-01-01\n\n - fix\n", DefaultPendingToken)
	require.NoError(t, err)
	require.Nil(t, doc.Pending())

	pending := doc.InsertPending()
	pending.AddGroups([]string{"API CHANGES", "ENHANCEMENTS"})

	expected := "Revision history for relnext\n\n" +
		"{{$NEXT}}\n\n" +
		" [API CHANGES]\n\n" +
		" [ENHANCEMENTS]\n\n" +
		"1.0.0 2024-01-01\n\n - fix\n"
	assert.Equal(t, expected, doc.Serialize())

	// Inserting again returns the existing section.
	assert.Same(t, pending, doc.InsertPending())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Changes")
	require.NoError(t, os.WriteFile(path, []byte(sampleChanges), 0o644))

	doc, err := Load(path, DefaultPendingToken)
	require.NoError(t, err)
	assert.NotNil(t, doc.Pending())

	_, err = Load(filepath.Join(dir, "missing"), DefaultPendingToken)
	assert.Error(t, err)
}
