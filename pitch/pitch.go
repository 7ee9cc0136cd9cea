// Package pitch names 12-tet pitches and renders interval sequences as notes.
package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jangler/justdrift/tuning"
)

// ErrInvalidNoteName is returned for unparseable note names.
var ErrInvalidNoteName = errors.New("pitch: invalid note name")

// pitch class, C = 0 through B = 11
type Class uint8

const (
	C Class = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var classNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var classAliases = map[string]Class{
	"cb": B, "c": C, "c#": CSharp,
	"db": CSharp, "d": D, "d#": DSharp,
	"eb": DSharp, "e": E, "e#": F,
	"fb": E, "f": F, "f#": FSharp,
	"gb": FSharp, "g": G, "g#": GSharp,
	"ab": GSharp, "a": A, "a#": ASharp,
	"bb": ASharp, "b": B, "b#": C,
}

// ParseClass parses a case-insensitive note name such as "C", "f#" or "Bb".
func ParseClass(s string) (Class, error) {
	if c, ok := classAliases[strings.ToLower(s)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// return the pitch class n half steps away
func (c Class) Shift(n int) Class {
	return Class(posMod(int(c)+n, 12))
}

// a named pitch in scientific pitch notation
type Pitch struct {
	Class  Class
	Octave int
}

// Parse parses a note name followed by an octave number, e.g. "C3", "f#4"
// or "Bb-1". Note that "Cb3" is B3 and "B#3" is C3; the octave is not
// carried by enharmonic spelling.
func Parse(s string) (Pitch, error) {
	i := strings.IndexFunc(s, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	if i <= 0 {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	c, err := ParseClass(s[:i])
	if err != nil {
		return Pitch{}, err
	}
	oct, err := strconv.Atoi(s[i:])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: bad octave in %q", ErrInvalidNoteName, s)
	}
	return Pitch{Class: c, Octave: oct}, nil
}

func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", p.Class, p.Octave)
}

// return the pitch n half steps away, carrying octaves
func (p Pitch) Shift(n int) Pitch {
	total := int(p.Class) + n
	return Pitch{
		Class:  Class(posMod(total, 12)),
		Octave: p.Octave + floorDiv(total, 12),
	}
}

// return the MIDI key number of the pitch, where C4 is 60. may lie outside
// the MIDI range.
func (p Pitch) MIDINote() int {
	return (p.Octave+1)*12 + int(p.Class)
}

// Renderer turns an interval sequence into concrete pitches.
type Renderer interface {
	Render(start Pitch, seq []tuning.Interval) []Pitch
}

// EqualTempered renders each interval by its 12-tet half steps.
type EqualTempered struct{}

// Render returns start followed by one pitch per interval.
func (EqualTempered) Render(start Pitch, seq []tuning.Interval) []Pitch {
	pitches := make([]Pitch, 0, len(seq)+1)
	pitches = append(pitches, start)
	last := start
	for _, i := range seq {
		last = last.Shift(i.HalfSteps())
		pitches = append(pitches, last)
	}
	return pitches
}

// Split deals items round-robin to n parts, e.g. alternating notes between
// two instruments. Returns nil if n < 1.
func Split[T any](items []T, n int) [][]T {
	if n < 1 {
		return nil
	}
	parts := make([][]T, n)
	for i, p := range items {
		parts[i%n] = append(parts[i%n], p)
	}
	return parts
}

// modulo where result is always in the range [0, y)
func posMod(x, y int) int {
	x %= y
	if x < 0 {
		x += y
	}
	return x
}

func floorDiv(x, y int) int {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q
}
