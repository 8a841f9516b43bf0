package main

import (
	"flag"

	"github.com/cockroachdb/apd/v3"
	"github.com/jcorbin/godc/dc"
	"github.com/jcorbin/godc/internal/logio"
)

// config collects command line settings, and turns them into dc.Options.
type config struct {
	expr        string
	prec        uint
	emax        int
	emin        int
	interactive bool
	trace       bool
}

func (cfg *config) bind(fs *flag.FlagSet) {
	fs.StringVar(&cfg.expr, "e", "", "evaluate an expression instead of reading files")
	fs.UintVar(&cfg.prec, "prec", dc.DefaultPrecision, "initial precision in significant digits")
	fs.IntVar(&cfg.emax, "emax", dc.DefaultMaxExponent, "maximum exponent")
	fs.IntVar(&cfg.emin, "emin", dc.DefaultMinExponent, "minimum exponent")
	fs.BoolVar(&cfg.interactive, "i", false, "run an interactive session")
	fs.BoolVar(&cfg.trace, "trace", false, "enable trace logging")
}

func (cfg *config) validate() error {
	if cfg.prec < 1 || cfg.prec > dc.MaxPrecision {
		return dc.PrecisionError{Precision: int64(cfg.prec)}
	}
	if cfg.emin > 0 || cfg.emax < 0 || cfg.emin < apd.MinExponent || cfg.emax > apd.MaxExponent {
		return errExponentLimits
	}
	return nil
}

func (cfg *config) options(log *logio.Logger) []dc.Option {
	opts := []dc.Option{
		dc.WithPrecision(uint32(cfg.prec)),
		dc.WithExponentLimits(int32(cfg.emin), int32(cfg.emax)),
	}
	if cfg.trace {
		opts = append(opts, dc.WithLogf(log.Leveledf("TRACE")))
	}
	return opts
}
