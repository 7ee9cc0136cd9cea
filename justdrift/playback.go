package main

import (
	"context"
	"math"
	"time"

	"github.com/jangler/justdrift/pitch"
	"gitlab.com/gomidi/midi/writer"
)

const (
	numMIDIChannels        = 16
	percussionChannelIndex = 9
	ticksPerQuarter        = 960
)

// a rendered note and how far its just pitch lies from 12-tet
type note struct {
	pitch pitch.Pitch
	cents float64
}

// pair rendered pitches with their drift in cents
func makeNotes(pitches []pitch.Pitch, drift []float64) []note {
	notes := make([]note, len(pitches))
	for i, p := range pitches {
		notes[i] = note{pitch: p}
		if i < len(drift) {
			notes[i].cents = drift[i]
		}
	}
	return notes
}

// return the exact pitch in MIDI semitones
func (n note) semitones() float64 {
	return float64(n.pitch.MIDINote()) + n.cents/100
}

// return note and pitch wheel values required to play a pitch in MIDI,
// given the pitch bend range in semitones
func pitchToMIDI(p float64, bendSemitones int) (uint8, int16) {
	key := uint8(math.Round(math.Max(0, math.Min(127, p))))
	bend := (p - float64(key)) * 8192.0 / float64(bendSemitones)
	return key, int16(math.Max(-8192, math.Min(8191, math.Round(bend))))
}

// return the MIDI channel used for an instrument, skipping percussion
func instrumentChannel(i int) uint8 {
	if i >= percussionChannelIndex {
		i++
	}
	return uint8(i % numMIDIChannels)
}

// type that writes a note sequence as MIDI events, one note after another,
// dealing notes round-robin to instruments
type player struct {
	settings *settings
	realtime bool
	sleep    func(context.Context, time.Duration) error
}

// create a new player
func newPlayer(s *settings, realtime bool) *player {
	return &player{settings: s, realtime: realtime, sleep: sleepContext}
}

// return the length of a note in SMF ticks
func (p *player) noteTicks() uint32 {
	return uint32(ticksPerQuarter / p.settings.NoteDivision)
}

// return the length of a note in real time
func (p *player) noteDuration() time.Duration {
	return time.Minute / time.Duration(p.settings.BPM*p.settings.NoteDivision)
}

// set up the channels of every instrument
func (p *player) setup(wr writer.ChannelWriter, instruments int) error {
	for i := 0; i < instruments; i++ {
		wr.SetChannel(instrumentChannel(i))
		if err := writer.ProgramChange(wr, uint8(p.settings.Program)); err != nil {
			return err
		}
		if err := writer.RPN(wr, 0, 0, uint8(p.settings.BendSemitones), 0); err != nil {
			return err
		}
	}
	return nil
}

// write notes to wr, waiting between note on and note off
func (p *player) play(ctx context.Context, wr writer.ChannelWriter, notes []note, instruments int) error {
	if err := p.setup(wr, instruments); err != nil {
		return err
	}
	for i, n := range notes {
		key, bend := pitchToMIDI(n.semitones(), p.settings.BendSemitones)
		wr.SetChannel(instrumentChannel(i % instruments))
		if err := writer.Pitchbend(wr, bend); err != nil {
			return err
		}
		if err := writer.NoteOn(wr, key, uint8(p.settings.Velocity)); err != nil {
			return err
		}

		if smf, ok := wr.(*writer.SMF); ok {
			smf.SetDelta(p.noteTicks())
		}
		var waitErr error
		if p.realtime {
			waitErr = p.sleep(ctx, p.noteDuration())
		}
		if err := writer.NoteOff(wr, key); err != nil {
			return err
		}
		if waitErr != nil {
			return waitErr
		}
	}
	return nil
}

// sleep for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// send the "GM system on" sysex message
func sendGMSystemOn(wr *writer.Writer) error {
	return writer.SysEx(wr, []byte{0x7e, 0x7f, 0x09, 0x01})
}
