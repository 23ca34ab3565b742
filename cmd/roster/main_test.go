package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateFormat("json"))
	assert.NoError(t, validateFormat("text"))
	assert.Error(t, validateFormat("yaml"))
	assert.Error(t, validateFormat(""))
}

func TestValidateStore(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateStore("memory"))
	assert.NoError(t, validateStore("sqlite"))
	assert.Error(t, validateStore("postgres"))
	assert.Error(t, validateStore(""))
}

func TestFormatUsersText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	formatUsersText(&buf, []CLIUser{
		{ID: 42, Name: "Alice", Email: "alice@example.com", Valid: true, Retrieved: true},
		{ID: 7, Name: "Mallory", Email: "not-an-email", Valid: false, Retrieved: true},
	})

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "alice@example.com")
	assert.Contains(t, out, "not-an-email")
	assert.Contains(t, out, "false")
}

func TestFormatEmailChecksText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	formatEmailChecksText(&buf, []CLIEmailCheck{
		{Email: "a@b.com", Valid: true},
		{Email: "nope", Valid: false},
	})

	out := buf.String()
	assert.Contains(t, out, "a@b.com")
	assert.Contains(t, out, "nope")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "false")
}

func TestServiceOptions_MemoryDefault(t *testing.T) {
	flagStore = "memory"
	flagSeed = 0
	defer func() { flagStore = "memory"; flagSeed = 0 }()

	opts, err := serviceOptions()
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestServiceOptions_SQLiteAndSeed(t *testing.T) {
	flagStore = "sqlite"
	flagSeed = 99
	defer func() { flagStore = "memory"; flagSeed = 0 }()

	opts, err := serviceOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}
