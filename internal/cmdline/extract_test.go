package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Forms(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		file      string
		remaining []string
	}{
		// single token
		{"long with equals", []string{"--config=config.json"}, "config.json", []string{}},
		{"long with space", []string{"--config config.json"}, "config.json", []string{}},
		{"long with spaced equals", []string{"--config = config.json"}, "config.json", []string{}},
		{"long with tab", []string{"--config\tconfig.json"}, "config.json", []string{}},
		{"long upper case", []string{"--CONFIG=config.json"}, "config.json", []string{}},
		{"long mixed case", []string{"--CoNfIg=config.json"}, "config.json", []string{}},
		{"short with equals", []string{"-c=config.json"}, "config.json", []string{}},
		{"short with space", []string{"-c config.json"}, "config.json", []string{}},
		{"leading whitespace", []string{"  --config=config.json  "}, "config.json", []string{}},
		{"quoted single token", []string{`--config="my config.json"`}, "my config.json", []string{}},

		// two tokens
		{"flag then file", []string{"--config", "config.json"}, "config.json", []string{}},
		{"flag with equals then file", []string{"--config=", "config.json"}, "config.json", []string{}},
		{"flag then equals file", []string{"--config", "=config.json"}, "config.json", []string{}},
		{"flag then spaced equals file", []string{"--config", " = config.json "}, "config.json", []string{}},
		{"short flag then file", []string{"-c", "config.json"}, "config.json", []string{}},
		{"flag then quoted file", []string{"--config", `"config.json"`}, "config.json", []string{}},

		// three tokens
		{"flag equals file", []string{"--config", "=", "config.json"}, "config.json", []string{}},
		{"spaced flag equals file", []string{"--config ", " = ", "config.json"}, "config.json", []string{}},
		{"short flag equals file", []string{"-c", "=", "config.json"}, "config.json", []string{}},

		// surrounding arguments
		{"other args before", []string{"--click", "-clack", "--config=config.json"}, "config.json", []string{"--click", "-clack"}},
		{"other args around", []string{"arg0", "--config=test.json", "arg1"}, "test.json", []string{"arg0", "arg1"}},
		{"other args around split form", []string{"run", "-c", "=", "a.json", "--fast"}, "a.json", []string{"run", "--fast"}},
		{"duplicate text kept", []string{"x", "x", "--config", "x"}, "x", []string{"x", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got := Extract(tt.tokens)

			// Assert
			require.True(t, got.Found)
			assert.False(t, got.Dangling)
			assert.Equal(t, tt.file, got.File)
			assert.Equal(t, tt.remaining, got.Remaining)
		})
	}
}

func TestExtract_NoFlag(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"empty", []string{}},
		{"plain args", []string{"serve", "--port", "8080"}},
		{"upper case short flag", []string{"-C", "Config.json"}},
		{"short flag glued to value", []string{"-cfile.json"}},
		{"longer flag name", []string{"--configuration=x.json"}},
		{"similar short flags", []string{"--click", "-clack"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.tokens)

			assert.False(t, got.Found)
			assert.False(t, got.Dangling)
			assert.Empty(t, got.File)
			assert.Equal(t, tt.tokens, got.Remaining)
		})
	}
}

func TestExtract_DoesNotAliasInput(t *testing.T) {
	tokens := []string{"a", "b"}

	got := Extract(tokens)
	got.Remaining[0] = "changed"

	assert.Equal(t, "a", tokens[0])
}

func TestExtract_Dangling(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		remaining []string
	}{
		{"flag is last token", []string{"run", "--config"}, []string{"run"}},
		{"flag with equals is last token", []string{"run", "--config="}, []string{"run"}},
		{"flag then lone equals at end", []string{"--config", "="}, []string{}},
		{"flag then blank token", []string{"--config", "  ", "next"}, []string{"  ", "next"}},
		{"flag then double equals", []string{"--config", "==x", "tail"}, []string{"==x", "tail"}},
		{"equals then equals", []string{"--config", "=", "=x"}, []string{"=x"}},
		{"empty quoted filename", []string{`--config=""`, "tail"}, []string{"tail"}},
		{"single token double equals", []string{"--config==x"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.tokens)

			assert.False(t, got.Found)
			assert.True(t, got.Dangling)
			assert.Empty(t, got.File)
			assert.Equal(t, tt.remaining, got.Remaining)
		})
	}
}

// TestExtract_BlankAfterEquals verifies that whitespace-only tokens after an
// explicit "=" keep the filename pending and stay in the output.
func TestExtract_BlankAfterEquals(t *testing.T) {
	got := Extract([]string{"--config=", " ", "app.json"})

	require.True(t, got.Found)
	assert.Equal(t, "app.json", got.File)
	assert.Equal(t, []string{" "}, got.Remaining)
}

func TestExtract_OnlyFirstOccurrence(t *testing.T) {
	got := Extract([]string{"--config=a.json", "-v", "--config=b.json"})

	require.True(t, got.Found)
	assert.Equal(t, "a.json", got.File)
	assert.Equal(t, []string{"-v", "--config=b.json"}, got.Remaining)
}

func TestExtract_IdempotentOnRemaining(t *testing.T) {
	inputs := [][]string{
		{"--config=config.json"},
		{"a", "-c", "config.json", "b"},
		{"--config", "=", "config.json", "--verbose"},
	}

	for _, tokens := range inputs {
		first := Extract(tokens)
		require.True(t, first.Found)

		second := Extract(first.Remaining)
		assert.False(t, second.Found)
		assert.Equal(t, first.Remaining, second.Remaining)
	}
}

func TestParseState_String(t *testing.T) {
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "flag", FlagMatched.String())
	assert.Equal(t, "equals", EqualsMatched.String())
	assert.Equal(t, "unknown", ParseState(42).String())
}
