package errs

import (
	"os"

	"github.com/rs/zerolog"
)

// Reporter receives fatal codec conditions.
//
// The default implementation logs and terminates the process. An embedding
// application may supply its own implementation to panic, record or ignore
// the condition instead; when ReportFatal returns, the failing operation
// returns the same error to its caller.
type Reporter interface {
	ReportFatal(err error)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(err error)

// ReportFatal calls f(err).
func (f ReporterFunc) ReportFatal(err error) {
	f(err)
}

// LogReporter logs fatal conditions at fatal level, which exits the process.
type LogReporter struct {
	logger zerolog.Logger
}

var _ Reporter = (*LogReporter)(nil)

// NewLogReporter creates a reporter writing to logger.
func NewLogReporter(logger zerolog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// ReportFatal logs err and terminates the process.
func (r *LogReporter) ReportFatal(err error) {
	r.logger.Fatal().Err(err).Msg("lzw encoder/decoder error")
}

// PanicReporter panics with the reported error.
type PanicReporter struct{}

var _ Reporter = PanicReporter{}

// ReportFatal panics with err.
func (PanicReporter) ReportFatal(err error) {
	panic(err)
}

var defaultReporter Reporter = NewLogReporter(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())

// DefaultReporter returns the process default reporter, which logs to stderr and exits.
func DefaultReporter() Reporter {
	return defaultReporter
}

// Report hands err to r, falling back to the default reporter when r is nil, and returns err.
//
// Typical use at a failure site:
//
//	return errs.Report(w.reporter, fmt.Errorf("%w: granularity %d", errs.ErrInvalidArgument, g))
func Report(r Reporter, err error) error {
	if r == nil {
		r = defaultReporter
	}
	r.ReportFatal(err)

	return err
}
