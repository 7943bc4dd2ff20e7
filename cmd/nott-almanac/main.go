// Command nott-almanac is a terminal almanac for the major planets,
// computed from analytic series rather than fetched ephemerides.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/almanac"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/config"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/kepler"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/logging"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/timescale"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	nutationMode  bool
	watchInterval time.Duration
	snapshotPath  string
	cardBody      string
	dateSpec      string
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	refresh := flag.Duration("refresh", 0, "Snapshot refresh interval (e.g., 30s, 1m)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&dateSpec, "date", "", "Fixed epoch: RFC3339 time or MJD number (default: now, ticking)")
	flag.BoolVar(&summaryMode, "summary", false, "Print ephemeris table instead of TUI")
	flag.BoolVar(&nutationMode, "nutation", false, "Print nutation report instead of TUI")
	flag.StringVar(&cardBody, "body", "", "Print a detail card for one body (e.g., mars)")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	finder := flag.String("finder", "", "Initial finder chart center body (e.g., mars)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 30s)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags win over the file.
	if *refresh != 0 {
		cfg.Refresh = *refresh
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *finder != "" {
		cfg.FinderCenter = *finder
	}
	if cfg.Refresh < config.MinRefresh {
		cfg.Refresh = config.MinRefresh
	} else if cfg.Refresh > config.MaxRefresh {
		cfg.Refresh = config.MaxRefresh
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel), os.Stderr)

	bodies, err := cfg.BodyList()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	epoch, err := parseEpoch(dateSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	eph := ephem.New(kepler.New())
	mgr := almanac.NewManager(almanac.Config{
		Refresh:    cfg.Refresh,
		HistoryLen: almanac.DefaultConfig().HistoryLen,
	})

	headless := summaryMode || nutationMode || cardBody != "" || snapshotPath != ""
	if !headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		// Piped output without an explicit mode: fall back to the table.
		summaryMode = true
		headless = true
	}
	if headless {
		runHeadless(ctx, epoch, bodies, eph, logger)
		return
	}

	finderCenter, err := ephem.ParseBody(cfg.FinderCenter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	model := ui.New(mgr, finderCenter)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go runComputeLoop(ctx, epoch, bodies, eph, mgr, p, logger)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// epochFunc returns the MJD for the next snapshot; nil means "now".
type epochFunc func() float64

// parseEpoch turns the -date flag into an epoch source.
func parseEpoch(spec string) (epochFunc, error) {
	if spec == "" {
		return func() float64 { return timescale.MJDFromTime(time.Now()) }, nil
	}
	if mjd, err := strconv.ParseFloat(spec, 64); err == nil {
		return func() float64 { return mjd }, nil
	}
	t, err := time.Parse(time.RFC3339, spec)
	if err != nil {
		return nil, fmt.Errorf("date %q is neither an MJD nor RFC3339", spec)
	}
	mjd := timescale.MJDFromTime(t)
	return func() float64 { return mjd }, nil
}

func runComputeLoop(ctx context.Context, epoch epochFunc, bodies []ephem.Body,
	eph *ephem.Ephemeris, mgr *almanac.Manager, p *tea.Program, logger *logging.Logger) {

	doCompute(epoch, bodies, eph, mgr, p, logger)

	ticker := time.NewTicker(mgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debugf("Compute loop shutting down")
			p.Quit()
			return
		case <-ticker.C:
			doCompute(epoch, bodies, eph, mgr, p, logger)
		}
	}
}

func doCompute(epoch epochFunc, bodies []ephem.Body, eph *ephem.Ephemeris,
	mgr *almanac.Manager, p *tea.Program, logger *logging.Logger) {

	mjd := epoch()
	logger.Debugf("Computing snapshot for MJD %.5f", mjd)

	start := time.Now()
	snap, err := almanac.Compute(mjd, bodies, eph)
	elapsed := time.Since(start)

	if err != nil {
		logger.Errorf("Snapshot failed: %v", err)
		mgr.Update(almanac.Snapshot{}, elapsed, err)
		p.Send(ui.ErrorMsg{Error: err})
		return
	}

	for _, b := range snap.Bodies {
		if b.RangeWarning {
			logger.Warnf("%v: epoch outside series validity", b.Body)
		}
	}

	mgr.Update(snap, elapsed, nil)
	p.Send(ui.DataUpdateMsg{Status: mgr.Status()})
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(ctx context.Context, epoch epochFunc, bodies []ephem.Body,
	eph *ephem.Ephemeris, logger *logging.Logger) {

	outputOnce := func() error {
		snap, err := almanac.Compute(epoch(), bodies, eph)
		if err != nil {
			return err
		}

		if snapshotPath != "" {
			export := almanac.ExportSnapshot(snap)
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				if err := export.WriteJSON(f); err != nil {
					f.Close()
					return fmt.Errorf("write JSON to file: %w", err)
				}
				if err := f.Close(); err != nil {
					return err
				}
			}
		}

		if summaryMode {
			almanac.WriteEphemerisTable(os.Stdout, snap)
		}

		if cardBody != "" {
			b, err := ephem.ParseBody(cardBody)
			if err != nil {
				return err
			}
			if err := almanac.WritePlanetCard(os.Stdout, snap, b); err != nil {
				return err
			}
		}

		if nutationMode {
			almanac.WriteNutationReport(os.Stdout, snap)
		}
		return nil
	}

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval
	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println()
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
