package pitch

import (
	"strings"
	"testing"

	"github.com/jangler/justdrift/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClass(t *testing.T) {
	names := map[string]Class{
		"Cb": B, "C": C, "C#": CSharp, "Db": CSharp, "D": D, "D#": DSharp,
		"Eb": DSharp, "E": E, "E#": F, "Fb": E, "F": F, "F#": FSharp,
		"Gb": FSharp, "G": G, "G#": GSharp, "Ab": GSharp, "A": A, "A#": ASharp,
		"Bb": ASharp, "B": B, "B#": C,
	}
	for s, want := range names {
		c, err := ParseClass(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, c, s)
		lower, err := ParseClass(strings.ToLower(s))
		require.NoError(t, err)
		assert.Equal(t, want, lower)
	}
	_, err := ParseClass("H")
	assert.ErrorIs(t, err, ErrInvalidNoteName)
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "C", C.String())
	assert.Equal(t, "C#", CSharp.String())
	assert.Equal(t, "F#", FSharp.String())
	assert.Equal(t, "B", B.String())
	assert.Equal(t, "Class(12)", Class(12).String())
}

func TestClassShift(t *testing.T) {
	assert.Equal(t, C, C.Shift(0))
	assert.Equal(t, CSharp, C.Shift(1))
	assert.Equal(t, E, C.Shift(4))
	assert.Equal(t, B, C.Shift(11))
	assert.Equal(t, C, C.Shift(12))
	assert.Equal(t, CSharp, C.Shift(13))
	assert.Equal(t, B, C.Shift(-1))
	assert.Equal(t, GSharp, C.Shift(-4))
	assert.Equal(t, G, C.Shift(-5))
	assert.Equal(t, B, C.Shift(-13))
	assert.Equal(t, F, C.Shift(5))
	assert.Equal(t, G, C.Shift(1200007))
}

func TestParse(t *testing.T) {
	p, err := Parse("C3")
	require.NoError(t, err)
	assert.Equal(t, Pitch{C, 3}, p)

	p, err = Parse("f#4")
	require.NoError(t, err)
	assert.Equal(t, Pitch{FSharp, 4}, p)

	p, err = Parse("Bb-1")
	require.NoError(t, err)
	assert.Equal(t, Pitch{ASharp, -1}, p)

	for _, s := range []string{"", "3", "H3", "C", "C#x"} {
		_, err = Parse(s)
		assert.ErrorIs(t, err, ErrInvalidNoteName, s)
	}
}

func TestPitchShift(t *testing.T) {
	assert.Equal(t, Pitch{E, 3}, Pitch{C, 3}.Shift(4))
	assert.Equal(t, Pitch{B, 2}, Pitch{E, 3}.Shift(-5))
	assert.Equal(t, Pitch{C, 4}, Pitch{B, 3}.Shift(1))
	assert.Equal(t, Pitch{C, 1}, Pitch{C, 3}.Shift(-24))
	assert.Equal(t, Pitch{B, -1}, Pitch{C, 0}.Shift(-1))
	assert.Equal(t, "F#3", Pitch{FSharp, 3}.String())
}

func TestMIDINote(t *testing.T) {
	assert.Equal(t, 60, Pitch{C, 4}.MIDINote())
	assert.Equal(t, 69, Pitch{A, 4}.MIDINote())
	assert.Equal(t, 0, Pitch{C, -1}.MIDINote())
	assert.Equal(t, 48, Pitch{C, 3}.MIDINote())
}

func TestEqualTemperedRender(t *testing.T) {
	var r Renderer = EqualTempered{}
	seq := []tuning.Interval{tuning.MajorThird, tuning.InvertedPerfectFourth, tuning.PerfectFifth}
	assert.Equal(t, []Pitch{{C, 3}, {E, 3}, {B, 2}, {FSharp, 3}}, r.Render(Pitch{C, 3}, seq))
	assert.Equal(t, []Pitch{{G, 5}}, r.Render(Pitch{G, 5}, nil))
}

func TestSplit(t *testing.T) {
	ps := []Pitch{{C, 3}, {E, 3}, {B, 2}, {FSharp, 3}, {A, 3}}
	parts := Split(ps, 2)
	require.Len(t, parts, 2)
	assert.Equal(t, []Pitch{{C, 3}, {B, 2}, {A, 3}}, parts[0])
	assert.Equal(t, []Pitch{{E, 3}, {FSharp, 3}}, parts[1])
	assert.Equal(t, [][]Pitch{ps}, Split(ps, 1))
	assert.Nil(t, Split(ps, 0))
}
