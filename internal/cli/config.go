// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/hypervolume/front"
	"github.com/katalvlaran/hypervolume/frontfile"
	"github.com/katalvlaran/hypervolume/internal/runner"
	"github.com/katalvlaran/hypervolume/wfg"
)

// settings is the resolved configuration of one compute run.
type settings struct {
	reference     front.Point
	options       wfg.Options
	maximize      []int // input columns; others are minimized
	columns       []int
	delimiter     string
	output        string
	jobs          int
	contributions bool
	metricsAddr   string
	format        runner.Format
	logLevel      string
	logFormat     string
}

// loadSettings reads every key from v and validates it.
func loadSettings(v *viper.Viper) (settings, error) {
	s := settings{
		options:       wfg.DefaultOptions(),
		delimiter:     v.GetString("delimiter"),
		output:        v.GetString("output"),
		jobs:          v.GetInt("jobs"),
		contributions: v.GetBool("contributions"),
		metricsAddr:   v.GetString("metrics-addr"),
		logLevel:      v.GetString("log-level"),
		logFormat:     v.GetString("log-format"),
	}

	var err error
	if s.options.Strategy, err = wfg.ParseStrategy(strings.ToLower(v.GetString("strategy"))); err != nil {
		return s, fmt.Errorf("--strategy %q: %w", v.GetString("strategy"), err)
	}
	if v.GetBool("minimize") {
		if v.GetBool("maximize-all") {
			return s, errors.New("--minimize and --maximize-all are mutually exclusive")
		}
		s.options.Sense = front.Minimize
	}
	if s.maximize, err = parseInts(v.GetStringSlice("maximize")); err != nil {
		return s, fmt.Errorf("--maximize: %w", err)
	}
	if len(s.maximize) > 0 && v.GetBool("maximize-all") {
		return s, errors.New("--maximize and --maximize-all are mutually exclusive")
	}
	if v.GetBool("tabs") {
		if s.delimiter != "" {
			return s, errors.New("--delimiter and --tabs are mutually exclusive")
		}
		s.delimiter = "\t"
	}
	if s.format, err = runner.ParseFormat(v.GetString("format")); err != nil {
		return s, err
	}
	if s.reference, err = parseFloats(v.GetStringSlice("reference")); err != nil {
		return s, fmt.Errorf("--reference: %w", err)
	}
	if s.columns, err = parseInts(v.GetStringSlice("columns")); err != nil {
		return s, fmt.Errorf("--columns: %w", err)
	}
	if s.jobs < 1 {
		return s, fmt.Errorf("--jobs must be at least 1, got %d", s.jobs)
	}

	return s, nil
}

// readOptions maps the settings onto frontfile options.
func (s settings) readOptions() []frontfile.Option {
	var opts []frontfile.Option
	if s.delimiter != "" {
		opts = append(opts, frontfile.WithDelimiter(s.delimiter))
	}
	if len(s.columns) > 0 {
		opts = append(opts, frontfile.WithColumns(s.columns...))
	}

	return opts
}

// maximizedObjectives maps the --maximize input columns to objective
// positions, which differ from columns when --columns reorders or drops them.
func (s settings) maximizedObjectives() ([]int, error) {
	if len(s.columns) == 0 {
		return s.maximize, nil
	}
	out := make([]int, 0, len(s.maximize))
	for _, c := range s.maximize {
		j := slices.Index(s.columns, c)
		if j < 0 {
			return nil, fmt.Errorf("--maximize: column %d is not among --columns %v", c, s.columns)
		}
		out = append(out, j)
	}

	return out, nil
}

// logger builds the run logger writing to w.
func (s settings) logger(w io.Writer) (*runner.Logger, error) {
	level, err := runner.ParseLevel(s.logLevel)
	if err != nil {
		return nil, err
	}
	switch s.logFormat {
	case "json":
		return runner.NewJSONLogger(w, level), nil
	case "text", "":
		return runner.NewTextLogger(w, level), nil
	default:
		return nil, fmt.Errorf("--log-format %q: want text or json", s.logFormat)
	}
}

// splitList flattens values that may each hold several comma or space
// separated items, as produced by flags, env and config files alike.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })...)
	}

	return out
}

func parseFloats(values []string) (front.Point, error) {
	items := splitList(values)
	if len(items) == 0 {
		return nil, nil
	}
	p := make(front.Point, len(items))
	for i, item := range items {
		v, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a number", item)
		}
		p[i] = v
	}

	return p, nil
}

func parseInts(values []string) ([]int, error) {
	items := splitList(values)
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]int, len(items))
	for i, item := range items {
		v, err := strconv.Atoi(item)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("value %q is not a column index", item)
		}
		out[i] = v
	}

	return out, nil
}
