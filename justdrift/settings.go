package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/jangler/justdrift/tuning"
)

var (
	settingsPath = "config/settings.csv"
)

type settings struct {
	BendSemitones     int
	BPM               int
	BracketRule       string
	Instruments       int
	MaxIterations     int
	MaxShellRadius    int
	MidiOutPortNumber int
	NoteDivision      int
	NotesPerLine      int
	Program           int
	Velocity          int
}

// return settings with default values
func newSettings() *settings {
	return &settings{
		BendSemitones:     2,
		BPM:               120,
		BracketRule:       tuning.BracketRuleCoordinate.String(),
		Instruments:       2,
		MaxIterations:     tuning.DefaultMaxIterations,
		MaxShellRadius:    tuning.DefaultMaxShellRadius,
		MidiOutPortNumber: 0,
		NoteDivision:      1,
		NotesPerLine:      20,
		Program:           0,
		Velocity:          100,
	}
}

// load settings from config file on top of the defaults. a missing file is
// not an error.
func loadSettings(path string, warn func(string)) *settings {
	s := newSettings()
	if records, err := readCSV(path); err == nil {
		s.applyRecords(records, warn)
	} else if !errors.Is(err, os.ErrNotExist) {
		warn(err.Error())
	}
	return s
}

// apply CSV records
func (s *settings) applyRecords(records [][]string, warn func(string)) {
	v := reflect.ValueOf(s).Elem()
	for _, rec := range records {
		success := false
		if len(rec) == 2 {
			if field := v.FieldByName(rec[0]); field.IsValid() {
				switch field.Kind() {
				case reflect.Int:
					if i, err := strconv.Atoi(rec[1]); err == nil {
						field.SetInt(int64(i))
						success = true
					}
				case reflect.String:
					field.SetString(rec[1])
					success = true
				}
			}
		}
		if !success {
			warn(fmt.Sprintf("bad settings record: %v", rec))
		}
	}
}

// check that values are usable
func (s *settings) validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(s.BendSemitones >= 1 && s.BendSemitones <= 127,
		"BendSemitones must be in the range [1, 127], got %d", s.BendSemitones)
	check(s.BPM > 0, "BPM must be positive, got %d", s.BPM)
	check(s.Instruments >= 1 && s.Instruments < numMIDIChannels,
		"Instruments must be in the range [1, %d], got %d", numMIDIChannels-1, s.Instruments)
	check(s.MaxIterations >= 0, "MaxIterations must not be negative, got %d", s.MaxIterations)
	check(s.MaxShellRadius >= 1, "MaxShellRadius must be at least 1, got %d", s.MaxShellRadius)
	check(s.NoteDivision >= 1, "NoteDivision must be at least 1, got %d", s.NoteDivision)
	check(s.NotesPerLine >= 1, "NotesPerLine must be at least 1, got %d", s.NotesPerLine)
	check(s.Program >= 0 && s.Program < 128, "Program must be in the range [0, 127], got %d", s.Program)
	check(s.Velocity >= 1 && s.Velocity < 128, "Velocity must be in the range [1, 127], got %d", s.Velocity)
	if _, err := tuning.ParseBracketRule(s.BracketRule); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// return search options derived from the settings
func (s *settings) searchOptions() []tuning.Option {
	rule, _ := tuning.ParseBracketRule(s.BracketRule)
	return []tuning.Option{
		tuning.WithMaxShellRadius(s.MaxShellRadius),
		tuning.WithMaxIterations(s.MaxIterations),
		tuning.WithBracketRule(rule),
	}
}

// read records from a CSV file
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.Comment = '#'
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
