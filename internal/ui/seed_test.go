package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeed(t *testing.T) {
	for text, want := range map[string]int64{
		"42":                   42,
		"-17":                  -17,
		" 7 ":                  7,
		"0":                    0,
		"9223372036854775807":  9223372036854775807,
		"-9223372036854775808": -9223372036854775808,
	} {
		got, err := ParseSeed(text)
		require.NoError(t, err, "text %q", text)
		assert.Equal(t, want, got, "text %q", text)
	}
	for _, text := range []string{"", "abc", "1.5", "12a", "9223372036854775808", "0x10"} {
		_, err := ParseSeed(text)
		assert.ErrorIs(t, err, ErrInvalidSeed, "text %q", text)
	}
}

func TestSeedInputSubmit(t *testing.T) {
	var in SeedInput
	in.Type('1')
	assert.Empty(t, in.Text(), "typing before Begin must be ignored")

	in.Begin()
	in.Type('-', '1', '2', ' ', '3')
	assert.Equal(t, "-123", in.Text())
	in.Backspace()
	assert.Equal(t, "-12", in.Text())

	seed, ok := in.Submit()
	require.True(t, ok)
	assert.Equal(t, int64(-12), seed)
	assert.False(t, in.Active())
	assert.Empty(t, in.Text())
}

func TestSeedInputRejectsNonInteger(t *testing.T) {
	var in SeedInput
	in.Begin()
	in.Type([]rune("4x2")...)
	_, ok := in.Submit()
	assert.False(t, ok)
	assert.True(t, in.Active())
	assert.Equal(t, "Please enter a valid integer seed.", in.Message())

	in.Cancel()
	assert.False(t, in.Active())
	_, ok = in.Submit()
	assert.False(t, ok)
}

func TestSeedInputLengthLimit(t *testing.T) {
	var in SeedInput
	in.Begin()
	for i := 0; i < 40; i++ {
		in.Type('9')
	}
	assert.Len(t, in.Text(), maxSeedRunes)
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, DarkTheme, LightTheme.Toggle())
	assert.Equal(t, LightTheme, DarkTheme.Toggle())
	assert.Equal(t, DarkTheme, ThemeByName("dark"))
	assert.Equal(t, LightTheme, ThemeByName("anything"))
}
