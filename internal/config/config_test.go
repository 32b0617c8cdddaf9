package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/calc/internal/menu"
	"github.com/shinji-kodama/calc/internal/model"
)

// TestLoad_JSONC verifies comments and trailing commas are accepted and
// that missing keys keep their defaults.
func TestLoad_JSONC(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "english.jsonc"))
	require.NoError(t, err)

	defaults := menu.DefaultMessages()
	assert.Equal(t, "Console Calculator", m.AppName)
	assert.Equal(t, "Welcome to %s", m.Welcome)
	assert.Equal(t, "Result: %s", m.Result)
	assert.Equal(t, "Thanks for using the calculator!", m.Farewell)
	assert.Equal(t, defaults.Menu, m.Menu)
	assert.Equal(t, defaults.DivisionByZero, m.DivisionByZero)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.jsonc"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigNotFound, cliErr.Code)
}

func TestLoad_InvalidFormat(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad-format.jsonc"))
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "messages.result", vErr.Field)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"appName": `), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestResolve_MessagesAppName(t *testing.T) {
	f, err := Parse([]byte(`{"messages": {"appName": "Inner"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Inner", f.Resolve().AppName)

	f.AppName = "Outer"
	assert.Equal(t, "Outer", f.Resolve().AppName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		messages menu.Messages
		fields   []string
	}{
		{name: "empty is valid", messages: menu.Messages{}},
		{name: "one verb", messages: menu.Messages{Result: "= %s"}},
		{name: "no verb", messages: menu.Messages{Welcome: "Hello"}, fields: []string{"messages.welcome"}},
		{name: "two verbs", messages: menu.Messages{InvalidToken: "%s %s"}, fields: []string{"messages.invalidToken"}},
		{name: "stray percent", messages: menu.Messages{Result: "100% %s"}, fields: []string{"messages.result"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&File{Messages: tt.messages})
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", Find(dir))

	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	assert.Equal(t, path, Find(dir))
}
