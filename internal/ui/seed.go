package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSeed reports seed text that is not a base-10 64-bit integer.
var ErrInvalidSeed = errors.New("please enter a valid integer seed")

// ParseSeed parses user-entered seed text.
func ParseSeed(text string) (int64, error) {
	s := strings.TrimSpace(text)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeed, s)
	}
	return v, nil
}

const maxSeedRunes = 20

// SeedInput is the editable seed text box.
type SeedInput struct {
	active  bool
	text    []rune
	message string
}

// Begin starts editing with an empty buffer.
func (s *SeedInput) Begin() {
	s.active = true
	s.text = s.text[:0]
	s.message = ""
}

// Cancel stops editing and discards the buffer.
func (s *SeedInput) Cancel() {
	s.active = false
	s.text = s.text[:0]
}

// Active reports whether the box is accepting input.
func (s *SeedInput) Active() bool { return s.active }

// Text returns the current buffer.
func (s *SeedInput) Text() string { return string(s.text) }

// Message returns the last validation message, if any.
func (s *SeedInput) Message() string { return s.message }

// Type appends printable runes. Whitespace and control runes are dropped;
// everything else is kept so ParseSeed can reject it on Submit.
func (s *SeedInput) Type(runes ...rune) {
	if !s.active {
		return
	}
	for _, r := range runes {
		if r <= ' ' || r == 0x7f {
			continue
		}
		if len(s.text) >= maxSeedRunes {
			return
		}
		s.text = append(s.text, r)
	}
}

// Backspace removes the last rune.
func (s *SeedInput) Backspace() {
	if s.active && len(s.text) > 0 {
		s.text = s.text[:len(s.text)-1]
	}
}

// Submit parses the buffer. On success editing stops; on failure the box
// stays open and Message holds the reason.
func (s *SeedInput) Submit() (int64, bool) {
	if !s.active {
		return 0, false
	}
	seed, err := ParseSeed(string(s.text))
	if err != nil {
		s.message = "Please enter a valid integer seed."
		return 0, false
	}
	s.active = false
	s.message = ""
	s.text = s.text[:0]
	return seed, true
}
