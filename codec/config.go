package codec

import (
	"fmt"

	"github.com/arloliu/lzw/bitstream"
	"github.com/arloliu/lzw/errs"
	"github.com/arloliu/lzw/internal/options"
	"github.com/rs/zerolog"
)

// Config holds the settings shared by every session of a Codec.
type Config struct {
	reporter    errs.Reporter
	logger      zerolog.Logger
	initialBits int
	granularity int
}

// Option configures a Codec.
type Option = options.Option[*Config]

func defaultConfig() Config {
	return Config{
		reporter:    errs.DefaultReporter(),
		logger:      zerolog.Nop(),
		initialBits: bitstream.DefaultInitialBits,
		granularity: bitstream.DefaultGranularity,
	}
}

// WithReporter sets the reporter receiving fatal conditions.
//
// The default reporter logs to stderr and terminates the process. A reporter
// that returns turns fatal conditions into ordinary errors.
func WithReporter(r errs.Reporter) Option {
	return options.New(func(c *Config) error {
		if r == nil {
			return fmt.Errorf("%w: nil reporter", errs.ErrInvalidArgument)
		}
		c.reporter = r

		return nil
	})
}

// WithLogger sets the logger used for session summaries and dictionary clears, both at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = logger
	})
}

// WithInitialBits sets the initial capacity, in bits, of the encoder output buffer.
func WithInitialBits(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: initial bits %d", errs.ErrInvalidArgument, n)
		}
		c.initialBits = n

		return nil
	})
}

// WithGranularity sets the growth multiplier of the encoder output buffer. It must be at least 2.
func WithGranularity(g int) Option {
	return options.New(func(c *Config) error {
		if g < 2 {
			return fmt.Errorf("%w: growth granularity %d, must be >= 2", errs.ErrInvalidArgument, g)
		}
		c.granularity = g

		return nil
	})
}

// writerOption bundles the encoder buffer settings into one writer option.
func (c *Config) writerOption() bitstream.WriterOption {
	return options.Join(
		bitstream.WithWriterReporter(c.reporter),
		bitstream.WithInitialBits(c.initialBits),
		bitstream.WithGranularity(c.granularity),
	)
}
