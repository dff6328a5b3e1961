// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypervolume/front"
	"github.com/katalvlaran/hypervolume/frontfile"
	"github.com/katalvlaran/hypervolume/internal/runner"
	"github.com/katalvlaran/hypervolume/wfg"
)

// stdinName is the FILE argument that reads standard input.
const stdinName = "-"

// runCompute reads FILE, resolves the reference point and reports every front.
func (a *app) runCompute(cmd *cobra.Command, args []string) (err error) {
	s, err := loadSettings(a.v)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		if s.reference, err = parseFloats(args[1:]); err != nil {
			return fmt.Errorf("reference point: %w", err)
		}
	}
	log, err := s.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	maximize, err := s.maximizedObjectives()
	if err != nil {
		return err
	}

	var fronts []*front.Front
	if args[0] == stdinName {
		if fronts, err = frontfile.Read(cmd.InOrStdin(), s.readOptions()...); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
	} else if fronts, err = frontfile.Open(args[0], s.readOptions()...); err != nil {
		return err
	}
	if len(fronts) == 0 {
		return fmt.Errorf("%s: no fronts", args[0])
	}
	if n := fronts[0].Objectives(); s.reference != nil && len(s.reference) != n {
		return fmt.Errorf("your reference point should have %d values: %w", n, runner.ErrReference)
	}

	metrics := runner.NewMetrics()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if s.metricsAddr != "" {
		stop, err := serveMetrics(s.metricsAddr, metrics, log)
		if err != nil {
			return err
		}
		defer stop()
	}

	r := runner.New(runner.Config{
		Reference:     s.reference,
		Options:       []wfg.Option{wfg.WithOptions(s.options)},
		Maximize:      maximize,
		Jobs:          s.jobs,
		Contributions: s.contributions,
	}, log, metrics)

	start := time.Now()
	results, err := r.Run(ctx, fronts)
	if err != nil {
		return err
	}
	total := time.Since(start)

	if s.output == "" || s.output == stdinName {
		return r.WriteReport(cmd.OutOrStdout(), s.format, results, total)
	}
	out, err := os.Create(s.output)
	if err != nil {
		return fmt.Errorf("--output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return r.WriteReport(out, s.format, results, total)
}

// serveMetrics exposes metrics on addr under /metrics until stop is called.
func serveMetrics(addr string, m *runner.Metrics, log *runner.Logger) (stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("--metrics-addr: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "error", err)
		}
	}()
	log.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
