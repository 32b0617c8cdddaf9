package script

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/calc/internal/model"
)

func TestLoad(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "session.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 6, p.Remaining())

	var got []string
	for {
		text, ok, err := p.Prompt("?")
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, text)
	}

	assert.Equal(t, []string{"1", "4", "5", "6", "10,x,30"}, got)
	assert.Equal(t, 0, p.Remaining())
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitScriptNotFound, cliErr.Code)
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte("responses:\n  - \"0\"\n  - ~\n  - \"\"\n"))
	require.NoError(t, err)
	require.Len(t, f.Responses, 3)
	assert.Equal(t, "0", *f.Responses[0])
	assert.Nil(t, f.Responses[1])
	assert.Equal(t, "", *f.Responses[2])
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("responses: [unterminated"))
	require.Error(t, err)
}

// TestPrompter_Exhausted verifies running past the end is a cancellation.
func TestPrompter_Exhausted(t *testing.T) {
	p := New(nil)
	_, ok, err := p.Prompt("?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrompter_Echo(t *testing.T) {
	one := "1"
	var out bytes.Buffer
	p := New([]*string{&one, nil}, WithEcho(&out))

	_, _, _ = p.Prompt("Elige una operación:")
	_, _, _ = p.Prompt("Ingresa el primer número:")
	_, _, _ = p.Prompt("Elige una operación:")

	assert.Equal(t,
		"Elige una operación:\n> 1\n"+
			"Ingresa el primer número:\n> (cancel)\n"+
			"Elige una operación:\n> (end of script)\n",
		out.String())
}
