package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jangler/justdrift/pitch"
	"github.com/jangler/justdrift/tuning"
)

var (
	colorTitle = lipgloss.Color("#2CD7C7")
	colorLabel = lipgloss.Color("#20B9B4")
	colorMuted = lipgloss.Color("#2C4A54")
	colorError = lipgloss.Color("#E74C3C")
)

// styles used by the report
type styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
}

// return colored styles, or unstyled ones for plain output
func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{Title: plain, Label: plain, Value: plain, Muted: plain, Error: plain}
	}
	return styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
		Label: lipgloss.NewStyle().Foreground(colorLabel),
		Value: lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(colorMuted),
		Error: lipgloss.NewStyle().Bold(true).Foreground(colorError),
	}
}

// parameters of a search, as given on the command line
type params struct {
	HalfSteps    int
	FreqScale    string
	ScaleErr     float64
	Start        pitch.Pitch
	Split        bool
	Instruments  int
	NotesPerLine int
}

// type that writes the human-readable search report
type reporter struct {
	w  io.Writer
	st styles
}

func (r *reporter) title(s string) {
	fmt.Fprintln(r.w, r.st.Title.Render(s))
}

func (r *reporter) field(indent int, label string, value interface{}) {
	fmt.Fprintf(r.w, "%s%s %s\n", strings.Repeat("   ", indent),
		r.st.Label.Render(fmt.Sprintf("%-26s", label+":")), r.st.Value.Render(fmt.Sprint(value)))
}

// write the parameters of the search
func (r *reporter) params(p params) {
	r.title("Starting out-of-tune sequence search with:")
	r.field(1, "Number of half steps", p.HalfSteps)
	r.field(1, "Target frequency scaling", p.FreqScale)
	r.field(1, "Max scaling error (cents)", fmt.Sprintf("%.3f", p.ScaleErr))
	r.field(1, "Starting note and octave", p.Start)
	r.field(1, "Split note sequence", p.Split)
	fmt.Fprintln(r.w)
}

// write a vector with the half steps and ratios of its expanded intervals
func (r *reporter) vector(indent int, v tuning.Vector) {
	seq := v.Expand()
	steps := make([]string, len(seq))
	ratios := make([]string, len(seq))
	for i, step := range seq {
		steps[i] = fmt.Sprintf("%4d", step.HalfSteps())
		ratios[i] = fmt.Sprintf("%4s", step.Ratio().RatString())
	}
	r.field(indent, "Number of half steps", fmt.Sprintf("%d =%s", v.HalfSteps(),
		r.st.Muted.Render(strings.Join(steps, ""))))
	r.field(indent, "Frequency scaling", fmt.Sprintf("%s =%s", v.Ratio().RatString(),
		r.st.Muted.Render(strings.Join(ratios, ""))))
}

// write what the search found
func (r *reporter) result(res *tuning.Result) {
	r.title("Searching for half step satisfying sequence:")
	r.field(1, "Vector", res.Base)
	r.vector(1, res.Base)
	fmt.Fprintln(r.w)

	r.title("Searching for scaling sequences:")
	fmt.Fprintln(r.w, "   "+r.st.Label.Render("Downscaling sequence:"))
	r.field(2, "Vector", res.Down)
	r.vector(2, res.Down)
	fmt.Fprintln(r.w, "   "+r.st.Label.Render("Upscaling sequence:"))
	r.field(2, "Vector", res.Up)
	r.vector(2, res.Up)
	fmt.Fprintln(r.w)

	ratio, _ := res.Ratio().Float64()
	r.title("Found sequence:")
	r.field(1, "Vector", res.Final)
	r.field(1, "Drift steps", res.DriftSteps)
	r.field(1, "Number of intervals", len(res.Intervals))
	r.field(1, "Scaling frequency", ratio)
	r.field(1, "Scaling error (cents)", res.ErrorCents)
	fmt.Fprintln(r.w)
}

// write pitches in rows of perLine
func (r *reporter) notes(label string, pitches []pitch.Pitch, perLine int) {
	fmt.Fprint(r.w, r.st.Title.Render(label))
	for i, p := range pitches {
		if i%perLine == 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprint(r.w, " "+p.String())
	}
	fmt.Fprintln(r.w)
}

// write the full report
func writeReport(w io.Writer, st styles, p params, res *tuning.Result, pitches []pitch.Pitch) {
	r := &reporter{w: w, st: st}
	r.params(p)
	r.result(res)
	r.notes("List of notes that correspond to the interval sequence:", pitches, p.NotesPerLine)
	if p.Split {
		for i, part := range pitch.Split(pitches, p.Instruments) {
			fmt.Fprintln(w)
			r.notes(fmt.Sprintf("Instrument %d:", i+1), part, p.NotesPerLine)
		}
	}
}
