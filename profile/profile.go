// Package profile wires optional pprof capture into the insertdox CLI.
// Annotating a large source tree is dominated by per-byte scanning, so CPU
// and heap profiles are the only ones worth offering; a zero-value Config
// leaves profiling disabled entirely.
package profile

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration, allowing callers
// to customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	CPUProfile  string
	HeapProfile string
}

// Config holds profiling output paths. An empty path disables that profile.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewProfiler] to create a [Profiler]
// that executes the profiling.
type Config struct {
	Flags Flags

	CPUProfile  string
	HeapProfile string
}

// NewConfig returns a new [Config] with default flag names and profiling
// disabled.
func NewConfig() *Config {
	f := Flags{
		CPUProfile:  "cpu-profile",
		HeapProfile: "heap-profile",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "",
		"write CPU profile to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "",
		"write heap profile to file")
}

// NewProfiler creates a new [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{Config: *c}
}

// Profiler controls the lifecycle of one profiling session. Call
// [Profiler.Start] before the work and [Profiler.Stop] after it; both are
// no-ops when no profile path is configured.
type Profiler struct {
	cpuFile *os.File
	Config
}

// Start begins CPU profiling if enabled.
func (p *Profiler) Start() error {
	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile)
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	p.cpuFile = f

	err = pprof.StartCPUProfile(f)
	if err != nil {
		f.Close()

		p.cpuFile = nil

		return fmt.Errorf("starting CPU profile: %w", err)
	}

	return nil
}

// Stop stops CPU profiling and writes the heap snapshot if enabled.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}

		p.cpuFile = nil
	}

	if p.HeapProfile == "" {
		return nil
	}

	f, err := os.Create(p.HeapProfile)
	if err != nil {
		return fmt.Errorf("create heap profile: %w", err)
	}

	err = pprof.Lookup("heap").WriteTo(f, 0)
	if err != nil {
		f.Close()

		return fmt.Errorf("write heap profile: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}

	return nil
}
