// Package profile adds runtime self-profiling to the flamecsv CLI.
//
// It supports CPU, heap, allocs, goroutine, block, and mutex profiles
// through command-line flags; the written pprof files can themselves be
// rendered into the flamegraph SVGs this tool consumes. Use
// [Config.RegisterFlags] to add CLI flags and
// [Config.RegisterCompletions] to wire up shell completions.
//
// Typical usage creates a [Config], registers flags, then wraps command
// execution with a [Profiler]:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	p := cfg.NewProfiler()
//	err := p.Start()
//	defer p.Stop()
//
// Users can then enable profiling via flags like --cpu-profile=cpu.prof.
// All profiles are disabled by default.
package profile
