package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"inverter/core"
	"inverter/host/config"
	"inverter/host/serial"
	"inverter/host/sim"
	"inverter/host/trace"
)

var (
	configPath = flag.String("config", "", "JSON configuration file (default: reference design)")
	cycles     = flag.Int("cycles", 0, "Number of PWM cycles to simulate (overrides config)")
	mode       = flag.String("mode", "", "Initial frequency selector position: low or high (overrides config)")
	wavPath    = flag.String("wav", "", "Write the differential output to this WAV file")
	device     = flag.String("device", "", "Stream duty frames to this serial device")
	baud       = flag.Int("baud", serial.DefaultBaud, "Baud rate for -device")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		core.SetDebugWriter(func(s string) { fmt.Fprintln(os.Stderr, s) })
		core.SetDebugEnabled(true)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	simCfg, err := cfg.SimConfig()
	if err != nil {
		return err
	}

	s, err := sim.New(simCfg)
	if err != nil {
		return err
	}

	printDesign(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tr, err := s.Run(ctx, cfg.Cycles)
	if err != nil {
		return fmt.Errorf("simulation stopped: %w", err)
	}

	st, cyc, skips := s.Generator().Snapshot()
	core.DebugPrintln(core.StatusLine(st, cyc, skips))

	printResults(tr, s.Registers().Stats())

	if *wavPath != "" {
		if err := writeWAV(*wavPath, tr); err != nil {
			return err
		}
		fmt.Printf("Wrote %d samples to %s\n", tr.Cycles(), *wavPath)
	}

	if *device != "" {
		if err := stream(ctx, *device, tr); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return nil, err
		}
	}

	if *cycles > 0 {
		cfg.Cycles = *cycles
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printDesign(cfg *config.Config) {
	fmt.Println("Inverter Waveform Simulator")
	fmt.Println("===========================")
	fmt.Println()
	fmt.Printf("  Cycle rate:   %d Hz\n", cfg.CycleHz)
	fmt.Printf("  Table length: %d samples\n", cfg.TableLength)
	fmt.Printf("  Skip reload:  every %d cycles\n", cfg.SkipReload)
	fmt.Printf("  Design:       %.3f Hz low / %.3f Hz high\n",
		core.EffectiveFrequency(float64(cfg.CycleHz), cfg.TableLength, uint8(cfg.SkipReload), true),
		core.EffectiveFrequency(float64(cfg.CycleHz), cfg.TableLength, uint8(cfg.SkipReload), false))
	fmt.Printf("  Start mode:   %s, %d switch(es)\n", cfg.Mode, len(cfg.Switches))
	fmt.Println()
}

func printResults(tr *sim.Trace, regs sim.RegisterStats) {
	fmt.Printf("Simulated %d cycles (%.4f s)\n", tr.Cycles(), tr.Seconds())
	fmt.Printf("  Table traversals:        %.3f\n", tr.Traversals())
	fmt.Printf("  Skipped samples:         %d\n", tr.Skips)
	fmt.Printf("  Effective frequency:     %.3f Hz\n", tr.EffectiveFrequency())
	fmt.Printf("  Zero-crossing frequency: %.3f Hz\n", tr.ZeroCrossingFrequency())
	fmt.Printf("  Complement violations:   %d\n", tr.ComplementViolations())
	fmt.Printf("  Commits/latches/acks:    %d/%d/%d (torn %d, missed %d)\n",
		regs.Commits, regs.Latches, regs.Acks, regs.Torn, regs.MissedAcks)
}

func writeWAV(path string, tr *sim.Trace) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("failed to close %s: %w", path, err)
		}
	}()

	return trace.WriteWAV(f, tr)
}

func stream(ctx context.Context, dev string, tr *sim.Trace) error {
	cfg := serial.DefaultConfig(dev)
	cfg.Baud = *baud

	fmt.Printf("Streaming duty frames to %s at %d baud...\n", dev, cfg.Baud)
	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	st := serial.NewStreamer(port)
	if err := st.WriteTrace(ctx, tr); err != nil {
		return err
	}
	if err := port.Flush(); err != nil {
		return err
	}

	fmt.Printf("Sent %d frames\n", st.Frames())
	return nil
}
