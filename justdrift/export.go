package main

import (
	"context"
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/smf"
	"gitlab.com/gomidi/midi/smf/smfwriter"
	"gitlab.com/gomidi/midi/writer"
	driver "gitlab.com/gomidi/rtmididrv"
)

// write notes to a single-track standard MIDI file
func exportSMF(path string, s *settings, notes []note, instruments int) error {
	return writer.WriteSMF(path, 1, func(wr *writer.SMF) error {
		if err := writer.TempoBPM(wr, float64(s.BPM)); err != nil {
			return err
		}
		if err := newPlayer(s, false).play(context.Background(), wr, notes, instruments); err != nil {
			return err
		}
		return writer.EndOfTrack(wr)
	}, smfwriter.TimeFormat(smf.MetricTicks(ticksPerQuarter)))
}

// play notes on the configured MIDI output port
func playRealtime(ctx context.Context, s *settings, notes []note, instruments int) error {
	drv, err := driver.New()
	if err != nil {
		return err
	}
	defer drv.Close()

	outs, err := drv.Outs()
	if err != nil {
		return err
	}
	n := s.MidiOutPortNumber
	if n < 0 || n >= len(outs) {
		return fmt.Errorf("MIDI output port index %d out of range [%d, %d)", n, 0, len(outs))
	}
	out := outs[n]
	if err := out.Open(); err != nil {
		return err
	}
	defer out.Close()

	wr := writer.New(out)
	if err := sendGMSystemOn(wr); err != nil {
		return err
	}
	return newPlayer(s, true).play(ctx, wr, notes, instruments)
}

// list MIDI output ports, one per line
func listPorts() (string, error) {
	drv, err := driver.New()
	if err != nil {
		return "", err
	}
	defer drv.Close()

	outs, err := drv.Outs()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, port := range outs {
		fmt.Fprintf(&b, "[%v] %s\n", port.Number(), port)
	}
	return b.String(), nil
}

// return base+suffix if base does not already end with suffix, otherwise
// return base. NOT case-sensitive.
func addSuffixIfMissing(base, suffix string) string {
	if !strings.HasSuffix(strings.ToLower(base), strings.ToLower(suffix)) {
		return base + suffix
	}
	return base
}
