// Package config holds the application configuration and its resolution
// chain: command-line flags take priority over environment variables, which
// take priority over an optional TOML profile, which takes priority over the
// built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "BIGCALC_"

// Defaults applied before any override source is consulted.
const (
	DefaultRadix       = 10
	DefaultTimeout     = 5 * time.Minute
	DefaultPrimeRounds = 20
)

// AppConfig carries every runtime setting of the calculator.
type AppConfig struct {
	// Radix is the base used to parse operands and print results.
	Radix int64
	// Timeout bounds the wall-clock duration of a single operation.
	Timeout time.Duration
	// PrimeRounds is the number of Miller-Rabin rounds for isprime.
	PrimeRounds int
	// Profile is the path of an optional TOML file with default settings.
	Profile string
	// MetricsListen is the listen address of the Prometheus endpoint.
	// Empty disables the endpoint.
	MetricsListen string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses everything except the bare result.
	Quiet bool
	// ShowVersion prints the version and exits.
	ShowVersion bool

	// Op is the requested operation name, the first positional argument.
	Op string
	// Args are the operand strings following the operation name.
	Args []string
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() AppConfig {
	return AppConfig{
		Radix:       DefaultRadix,
		Timeout:     DefaultTimeout,
		PrimeRounds: DefaultPrimeRounds,
	}
}

// ParseFlags resolves the full configuration from the given argument list,
// the environment and the optional profile file. Usage and error output is
// written to w.
func ParseFlags(args []string, w io.Writer) (AppConfig, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("bigcalc", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { printUsage(fs, w) }

	fs.Int64Var(&cfg.Radix, "radix", cfg.Radix, "radix for operands and results (2-36)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "wall-clock limit for one operation")
	fs.IntVar(&cfg.PrimeRounds, "prime-rounds", cfg.PrimeRounds, "Miller-Rabin rounds for probabilistic primality")
	fs.StringVar(&cfg.Profile, "profile", "", "path to a TOML profile with default settings")
	fs.StringVar(&cfg.MetricsListen, "metrics-listen", "", "listen address for Prometheus metrics (empty disables)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the bare result")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	applyEnvOverrides(&cfg, fs)

	if cfg.Profile != "" {
		if err := applyProfile(&cfg, fs); err != nil {
			return cfg, err
		}
	}

	if rest := fs.Args(); len(rest) > 0 {
		cfg.Op = rest[0]
		cfg.Args = rest[1:]
	}

	return cfg, Validate(cfg)
}

// Validate rejects configurations the engine cannot honour.
func Validate(cfg AppConfig) error {
	if cfg.Radix < 2 || cfg.Radix > 36 {
		return apperrors.NewConfigError("radix %d out of range [2, 36]", cfg.Radix)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.PrimeRounds < 1 {
		return apperrors.NewConfigError("prime-rounds must be at least 1, got %d", cfg.PrimeRounds)
	}
	if cfg.Verbose && cfg.Quiet {
		return apperrors.NewConfigError("verbose and quiet are mutually exclusive")
	}
	return nil
}

// profileFile mirrors the TOML profile schema. Pointer fields distinguish
// "absent" from a zero value.
type profileFile struct {
	Radix         *int64  `toml:"radix"`
	Timeout       *string `toml:"timeout"`
	PrimeRounds   *int    `toml:"prime_rounds"`
	MetricsListen *string `toml:"metrics_listen"`
	Verbose       *bool   `toml:"verbose"`
	Quiet         *bool   `toml:"quiet"`
}

// applyProfile fills settings from the TOML profile for anything not already
// pinned by a flag or an environment variable.
func applyProfile(cfg *AppConfig, fs *flag.FlagSet) error {
	var p profileFile
	if _, err := toml.DecodeFile(cfg.Profile, &p); err != nil {
		return apperrors.NewConfigError("cannot load profile %s: %v", cfg.Profile, err)
	}

	pinned := func(envKey string, flags ...string) bool {
		return isFlagSetAny(fs, flags...) || envSet(envKey)
	}

	if p.Radix != nil && !pinned("RADIX", "radix") {
		cfg.Radix = *p.Radix
	}
	if p.Timeout != nil && !pinned("TIMEOUT", "timeout") {
		d, err := time.ParseDuration(*p.Timeout)
		if err != nil {
			return apperrors.NewConfigError("profile %s: bad timeout %q: %v", cfg.Profile, *p.Timeout, err)
		}
		cfg.Timeout = d
	}
	if p.PrimeRounds != nil && !pinned("PRIME_ROUNDS", "prime-rounds") {
		cfg.PrimeRounds = *p.PrimeRounds
	}
	if p.MetricsListen != nil && !pinned("METRICS_LISTEN", "metrics-listen") {
		cfg.MetricsListen = *p.MetricsListen
	}
	if p.Verbose != nil && !pinned("VERBOSE", "verbose", "v") {
		cfg.Verbose = *p.Verbose
	}
	if p.Quiet != nil && !pinned("QUIET", "quiet", "q") {
		cfg.Quiet = *p.Quiet
	}
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: bigcalc [flags] <operation> <operand>...\n\n")
	fmt.Fprintf(w, "Operations:\n")
	fmt.Fprintf(w, "  add, sub, mul, div, mod, divmod, pow, modpow, modinv,\n")
	fmt.Fprintf(w, "  and, or, xor, not, shl, shr, gcd, lcm, isprime, cmp,\n")
	fmt.Fprintf(w, "  rand, convert\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment variables prefixed %s override defaults but not flags.\n", EnvPrefix)
}
