// Command justdrift computes just intonated interval sequences that span a
// given number of half steps while drifting in tuning by a given factor.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"os/signal"
	"strings"

	"github.com/jangler/justdrift/pitch"
	"github.com/jangler/justdrift/tuning"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const appName = "justdrift"

var (
	freqScale      string
	freqScaleErr   float64
	nHalfSteps     int
	startingNote   string
	startingOctave int
	splitNotes     bool
	strictBracket  bool
	exportPath     string
	playMIDI       bool
	configPath     string
	verbose        bool

	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "Compute just intonated interval sequences that drift in tuning",
		Long: `justdrift searches for a sequence of major thirds, perfect fourths and
perfect fifths (and their inversions) spanning a number of half steps whose
exact frequency ratio lands within an error in cents of a target scaling.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSearch,
	}

	portsCmd = &cobra.Command{
		Use:   "ports",
		Short: "List MIDI output ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := listPorts()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&freqScale, "freq-scale", "1", "frequency scaling parameter, decimal or fraction")
	f.Float64Var(&freqScaleErr, "freq-scale-err", 1.0, "error of freq-scale in cents (1/100 half step)")
	f.IntVar(&nHalfSteps, "nhalf-steps", 0, "number of half steps")
	f.StringVar(&startingNote, "starting-note", "C", "starting note name, optionally with an octave (e.g. F#3)")
	f.IntVar(&startingOctave, "starting-octave", 3, "starting octave")
	f.BoolVar(&splitNotes, "split-note-sequence", false, "split notes for instruments")
	f.BoolVar(&strictBracket, "strict-bracket", false,
		"only exclude the exact inverse of the downscaling vector when searching the upscaling one")
	f.StringVar(&exportPath, "export", "", "write the note sequence to a MIDI file")
	f.BoolVar(&playMIDI, "play", false, "play the note sequence on the configured MIDI output port")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", settingsPath, "settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search progress")
	rootCmd.AddCommand(portsCmd)
}

// return a logger writing to w
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parse a positive decimal or fractional frequency scale
func parseFreqScale(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok || r.Sign() <= 0 {
		return nil, fmt.Errorf("%w: bad frequency scale %q", tuning.ErrInvalidParameter, s)
	}
	return r, nil
}

// parse a starting note such as "Db", taking the octave from octave, or a
// full pitch such as "F#3"
func parseStart(name string, octave int) (pitch.Pitch, error) {
	if strings.ContainsAny(name, "-0123456789") {
		return pitch.Parse(name)
	}
	class, err := pitch.ParseClass(name)
	if err != nil {
		return pitch.Pitch{}, err
	}
	return pitch.Pitch{Class: class, Octave: octave}, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	s := loadSettings(configPath, func(msg string) { logger.Warn(msg, "path", configPath) })
	if strictBracket {
		s.BracketRule = tuning.BracketRuleNegation.String()
	}
	if err := s.validate(); err != nil {
		return err
	}

	ratio, err := parseFreqScale(freqScale)
	if err != nil {
		return err
	}
	start, err := parseStart(startingNote, startingOctave)
	if err != nil {
		return err
	}

	opts := append(s.searchOptions(), tuning.WithLogger(logger))
	res, err := tuning.ComputeSequence(nHalfSteps, ratio, freqScaleErr, opts...)
	if err != nil {
		return err
	}

	instruments := 1
	if splitNotes {
		instruments = s.Instruments
	}
	pitches := pitch.EqualTempered{}.Render(start, res.Intervals)

	out := cmd.OutOrStdout()
	writeReport(out, newStyles(isTerminal(out)), params{
		HalfSteps:    nHalfSteps,
		FreqScale:    ratio.RatString(),
		ScaleErr:     freqScaleErr,
		Start:        start,
		Split:        splitNotes,
		Instruments:  instruments,
		NotesPerLine: s.NotesPerLine,
	}, res, pitches)

	notes := makeNotes(pitches, tuning.DriftCents(res.Intervals))
	if exportPath != "" {
		path := addSuffixIfMissing(exportPath, ".mid")
		if err := exportSMF(path, s, notes, instruments); err != nil {
			return err
		}
		logger.Info("exported MIDI file", "path", path, "notes", len(notes))
	}
	if playMIDI {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if err := playRealtime(ctx, s, notes, instruments); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}

// report whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		st := newStyles(isTerminal(os.Stderr))
		fmt.Fprintln(os.Stderr, st.Error.Render("error:"), err)
		os.Exit(1)
	}
}
