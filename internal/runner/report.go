// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	// Text prints one "hv(i) = ..." line per front and the elapsed time.
	Text Format = "text"

	// YAML prints a structured Report.
	YAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case Text, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("runner: unknown report format %q", name)
	}
}

// Report is the structured form of a run.
type Report struct {
	RunID        string        `yaml:"run_id"`
	Strategy     string        `yaml:"strategy"`
	Sense        string        `yaml:"sense"`
	Maximize     []int         `yaml:"maximize,omitempty,flow"`
	Reference    []float64     `yaml:"reference,omitempty,flow"`
	TotalSeconds float64       `yaml:"total_seconds"`
	Fronts       []FrontReport `yaml:"fronts"`
}

// FrontReport is one entry of Report.Fronts.
type FrontReport struct {
	Index         int       `yaml:"index"`
	Points        int       `yaml:"points"`
	Objectives    int       `yaml:"objectives"`
	Hypervolume   float64   `yaml:"hypervolume"`
	Seconds       float64   `yaml:"seconds"`
	Contributions []float64 `yaml:"contributions,omitempty,flow"`
}

// senseMixed names a run with per-objective senses.
const senseMixed = "mixed"

// NewReport assembles the structured report of a finished run.
func (r *Runner) NewReport(results []Result, total time.Duration) Report {
	sense := r.opts.Sense.String()
	if r.Mixed() {
		sense = senseMixed
	}
	rep := Report{
		RunID:        r.runID,
		Strategy:     r.opts.Strategy.String(),
		Sense:        sense,
		Maximize:     r.cfg.Maximize,
		Reference:    r.cfg.Reference,
		TotalSeconds: total.Seconds(),
		Fronts:       make([]FrontReport, len(results)),
	}
	for i, res := range results {
		rep.Fronts[i] = FrontReport{
			Index:         res.Index + 1,
			Points:        res.Points,
			Objectives:    res.Objectives,
			Hypervolume:   res.Hypervolume,
			Seconds:       res.Elapsed.Seconds(),
			Contributions: res.Contributions,
		}
	}

	return rep
}

// WriteReport encodes results to w in the given format.
//
// Text layout, per front:
//
//	hv(1) = 0.4217492325
//	  c(1) = 0.0123456789   (only with contributions)
//	Time: 0.000131 (s)
//
// followed by the total time of the run.
func (r *Runner) WriteReport(w io.Writer, format Format, results []Result, total time.Duration) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.NewReport(results, total)); err != nil {
			return fmt.Errorf("runner: yaml report: %w", err)
		}

		return enc.Close()
	case Text, "":
		for _, res := range results {
			if _, err := fmt.Fprintf(w, "hv(%d) = %1.10f\n", res.Index+1, res.Hypervolume); err != nil {
				return err
			}
			for k, c := range res.Contributions {
				if _, err := fmt.Fprintf(w, "  c(%d) = %1.10f\n", k+1, c); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "Time: %f (s)\n", res.Elapsed.Seconds()); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "Total time = %f (s)\n", total.Seconds())

		return err
	default:
		return fmt.Errorf("runner: unknown report format %q", format)
	}
}
