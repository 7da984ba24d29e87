package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	gcaerrors "gca.dev/gca/internal/errors"
)

var menu = []SelectOption{
	{Label: "Guided", Value: "guided"},
	{Label: "Custom", Value: "custom"},
	{Label: "Cancel", Value: "cancel"},
}

func newTestLinePrompter(input string) (*LinePrompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewLinePrompter(strings.NewReader(input), out), out
}

func TestLinePrompter_Select(t *testing.T) {
	t.Run("returns the value of the chosen option", func(t *testing.T) {
		p, out := newTestLinePrompter("2\n")
		value, err := p.Select("How do you want to write the message?", menu)
		require.NoError(t, err)
		require.Equal(t, "custom", value)
		require.Contains(t, out.String(), "1. Guided")
		require.Contains(t, out.String(), "3. Cancel")
		require.Contains(t, out.String(), "Enter number (or 'q' to quit): ")
	})

	t.Run("asks again after an invalid choice", func(t *testing.T) {
		p, out := newTestLinePrompter("7\nabc\n 1 \n")
		value, err := p.Select("Pick", menu)
		require.NoError(t, err)
		require.Equal(t, "guided", value)
		require.Equal(t, 3, strings.Count(out.String(), "Enter number"))
		require.Contains(t, out.String(), `Invalid choice "7"`)
	})

	t.Run("q cancels", func(t *testing.T) {
		p, _ := newTestLinePrompter("Q\n")
		_, err := p.Select("Pick", menu)
		require.ErrorIs(t, err, gcaerrors.ErrCanceled)
	})

	t.Run("end of input cancels", func(t *testing.T) {
		p, _ := newTestLinePrompter("")
		_, err := p.Select("Pick", menu)
		require.ErrorIs(t, err, gcaerrors.ErrCanceled)
	})

	t.Run("last line without a newline is still read", func(t *testing.T) {
		p, _ := newTestLinePrompter("3")
		value, err := p.Select("Pick", menu)
		require.NoError(t, err)
		require.Equal(t, "cancel", value)
	})

	t.Run("no options is an error", func(t *testing.T) {
		p, _ := newTestLinePrompter("1\n")
		_, err := p.Select("Pick", nil)
		require.Error(t, err)
	})
}

func TestLinePrompter_Input(t *testing.T) {
	p, out := newTestLinePrompter("  fix login redirect  \n")
	text, err := p.Input("Enter your commit message:")
	require.NoError(t, err)
	require.Equal(t, "fix login redirect", text)
	require.Contains(t, out.String(), "Enter your commit message:")

	p, _ = newTestLinePrompter("\n")
	text, err = p.Input("Message")
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestLinePrompter_Confirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"yep\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p, out := newTestLinePrompter(tt.input)
			ok, err := p.Confirm("Commit these changes?")
			require.NoError(t, err)
			require.Equal(t, tt.expected, ok)
			require.Contains(t, out.String(), "Commit these changes? (y/n): ")
		})
	}

	t.Run("end of input cancels", func(t *testing.T) {
		p, _ := newTestLinePrompter("")
		_, err := p.Confirm("Push?")
		require.ErrorIs(t, err, gcaerrors.ErrCanceled)
	})
}

func TestLinePrompter_SharesInputAcrossPrompts(t *testing.T) {
	p, _ := newTestLinePrompter("2\nadd search box\ny\nn\n")

	method, err := p.Select("Method", menu)
	require.NoError(t, err)
	require.Equal(t, "custom", method)

	text, err := p.Input("Message")
	require.NoError(t, err)
	require.Equal(t, "add search box", text)

	commit, err := p.Confirm("Commit?")
	require.NoError(t, err)
	require.True(t, commit)

	push, err := p.Confirm("Push?")
	require.NoError(t, err)
	require.False(t, push)
}
