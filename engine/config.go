package engine

import "github.com/rs/zerolog"

const (
	DefaultHashMB = 16
	// MaxDepth bounds the nominal search depth. Killers are indexed by it.
	MaxDepth = 64
	// MaxPly bounds recursion including quiescence.
	MaxPly = 128
)

// Config is fixed for the lifetime of a Searcher.
type Config struct {
	HashMB  int
	Threads int
	Logger  zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		HashMB:  DefaultHashMB,
		Threads: 1,
		Logger:  zerolog.Nop(),
	}
}

type Option func(*Config)

// WithHashMB sizes the transposition table in MiB.
func WithHashMB(mb int) Option {
	return func(c *Config) { c.HashMB = mb }
}

// WithThreads sets the worker count used when Limits.Threads is zero.
func WithThreads(n int) Option {
	return func(c *Config) { c.Threads = n }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
