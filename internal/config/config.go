package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/shinji-kodama/calc/internal/menu"
	"github.com/shinji-kodama/calc/internal/model"
)

// DefaultFileName is the config file picked up from the working directory.
const DefaultFileName = ".calc.jsonc"

// File is the JSON structure of a config file.
type File struct {
	// AppName is shown in the welcome message.
	AppName string `json:"appName,omitempty"`

	// Messages overrides individual menu strings. See menu.Messages for
	// the accepted keys.
	Messages menu.Messages `json:"messages"`
}

// ValidationError describes one unusable value in a config file.
type ValidationError struct {
	// Field is the JSON key path, e.g. "messages.result".
	Field string

	// Message describes the problem.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// Load reads and validates a config file, returning the complete message
// set (overrides merged over defaults).
//
// Returns a CLIError with ExitConfigNotFound if the file does not exist.
func Load(path string) (menu.Messages, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return menu.Messages{}, model.WrapCLIError(
				model.ExitConfigNotFound,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return menu.Messages{}, fmt.Errorf("failed to read config file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return menu.Messages{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if errs := Validate(f); len(errs) > 0 {
		return menu.Messages{}, &errs[0]
	}
	return f.Resolve(), nil
}

// Parse strips JSONC comments and trailing commas, then decodes the
// document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Resolve merges the file over the default messages. The top-level
// appName wins over messages.appName.
func (f *File) Resolve() menu.Messages {
	m := f.Messages
	if f.AppName != "" {
		m.AppName = f.AppName
	}
	return m.Merge(menu.DefaultMessages())
}

// Validate checks that overridden format strings keep exactly one %s
// verb, since the menu formats them with a single argument.
func Validate(f *File) []ValidationError {
	var errs []ValidationError

	formats := []struct {
		field string
		value string
	}{
		{"messages.welcome", f.Messages.Welcome},
		{"messages.invalidToken", f.Messages.InvalidToken},
		{"messages.result", f.Messages.Result},
	}
	for _, fm := range formats {
		if fm.value == "" {
			continue
		}
		if n := strings.Count(fm.value, "%s"); n != 1 || strings.Count(fm.value, "%") != 1 {
			errs = append(errs, ValidationError{
				Field:   fm.field,
				Message: fmt.Sprintf("must contain exactly one %%s placeholder, got %q", fm.value),
			})
		}
	}
	return errs
}

// Find returns the path of DefaultFileName in dir, or "" if there is none.
func Find(dir string) string {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
