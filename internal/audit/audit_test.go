package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		User:      "sk",
		Operation: "transfer",
		Outcome:   OutcomeAccepted,
		Details:   "to=sr amount=100",
	}
}

func TestAppend_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "audit.csv")
	require.NoError(t, Append(path, []Entry{testEntry()}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sk", entries[0].User)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), Header+"\n")
}

func TestAppend_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	require.NoError(t, Append(path, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Operation = "loan"
	e2.Outcome = OutcomeRejected
	require.NoError(t, Append(path, []Entry{e2}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "transfer", entries[0].Operation)
	assert.Equal(t, "loan", entries[1].Operation)
	assert.Equal(t, OutcomeRejected, entries[1].Outcome)
}

func TestRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	original := testEntry()
	original.Details = "reason: insufficient balance, retry later"
	require.NoError(t, Append(path, []Entry{original}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.User, got.User)
	assert.Equal(t, original.Operation, got.Operation)
	assert.Equal(t, original.Outcome, got.Outcome)
	assert.Equal(t, original.Details, got.Details)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "audit.csv"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	require.NoError(t, os.WriteFile(path, []byte(Header+"\n"), 0o644))

	entries, err := Read(path)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 5 fields")
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	row := MarshalEntry(testEntry())
	row[colTimestamp] = "yesterday"
	_, err := UnmarshalEntry(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	r := NewRecorder(path)
	r.now = func() time.Time { return testTime }

	require.True(t, r.Enabled())
	require.NoError(t, r.Record("sc", "loan", OutcomeAccepted, "amount=1000"))
	require.NoError(t, r.Record("", "login", OutcomeRejected, "unknown username"))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, testTime.Equal(entries[0].Timestamp))
	assert.Equal(t, "sc", entries[0].User)
	assert.Empty(t, entries[1].User)
}

func TestRecorder_Disabled(t *testing.T) {
	r := NewRecorder("")
	assert.False(t, r.Enabled())
	assert.NoError(t, r.Record("sk", "login", OutcomeAccepted, ""))

	var nilRecorder *Recorder
	assert.False(t, nilRecorder.Enabled())
	assert.NoError(t, nilRecorder.Record("sk", "login", OutcomeAccepted, ""))
}

func TestForUser(t *testing.T) {
	a := testEntry()
	b := testEntry()
	b.User = "sr"
	c := testEntry()
	c.Operation = "loan"

	got := ForUser([]Entry{a, b, c}, "sk")
	require.Len(t, got, 2)
	assert.Equal(t, "transfer", got[0].Operation)
	assert.Equal(t, "loan", got[1].Operation)
	assert.Empty(t, ForUser([]Entry{a}, "zz"))
}
