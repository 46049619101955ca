package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"food", "Food"},
		{"FOOD", "Food"},
		{"fOoD", "Food"},
		{"такси", "Такси"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, capitalize(tt.in), "capitalize(%q)", tt.in)
	}
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := loadConfig("does-not-exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"USD", "EUR"}, cfg.Rates.Currencies)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"report", "filter", "search", "expenses"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
