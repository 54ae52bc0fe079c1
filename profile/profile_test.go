package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/flamecsv/profile"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()

	// All profile paths should be empty (disabled).
	assert.Empty(t, cfg.CPUProfile)
	assert.Empty(t, cfg.HeapProfile)
	assert.Empty(t, cfg.AllocsProfile)
	assert.Empty(t, cfg.GoroutineProfile)
	assert.Empty(t, cfg.BlockProfile)
	assert.Empty(t, cfg.MutexProfile)

	// Rate fields should be zero.
	assert.Zero(t, cfg.MemProfileRate)
	assert.Zero(t, cfg.BlockProfileRate)
	assert.Zero(t, cfg.MutexProfileFraction)
}

func TestConfig_RegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	cfg.RegisterFlags(flags)

	wantFlags := []string{
		"cpu-profile",
		"heap-profile",
		"allocs-profile",
		"goroutine-profile",
		"block-profile",
		"mutex-profile",
		"mem-profile-rate",
		"block-profile-rate",
		"mutex-profile-fraction",
	}

	for _, name := range wantFlags {
		flag := flags.Lookup(name)
		require.NotNil(t, flag, "flag %s should be registered", name)
	}
}

func TestConfig_RegisterFlags_Parsing(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	cfg.RegisterFlags(flags)

	err := flags.Parse([]string{
		"--cpu-profile=cpu.prof",
		"--heap-profile=heap.prof",
		"--mem-profile-rate=1024",
		"--mutex-profile-fraction=10",
	})
	require.NoError(t, err)

	assert.Equal(t, "cpu.prof", cfg.CPUProfile)
	assert.Equal(t, "heap.prof", cfg.HeapProfile)
	assert.Equal(t, 1024, cfg.MemProfileRate)
	assert.Equal(t, 10, cfg.MutexProfileFraction)
}

func TestConfig_RegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))
}

func TestProfiler_Disabled(t *testing.T) {
	t.Parallel()

	// A zero config starts and stops without writing anything.
	p := profile.NewConfig().NewProfiler()

	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())
}

func TestProfiler_HeapProfile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.HeapProfile = filepath.Join(dir, "heap.prof")

	p := cfg.NewProfiler()

	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())

	info, err := os.Stat(cfg.HeapProfile)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
