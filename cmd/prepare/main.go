// prepare builds the BB84 state preparation for a register of bits and bases
// and prints it, either as state labels, as an OpenQASM program, or as the
// hex-encoded circuit wire frame.
package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alan-christopher/bb84prep/bb84"
	"github.com/alan-christopher/bb84prep/bb84/bitmap"
	"github.com/alan-christopher/bb84prep/bb84/circuit"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	formatLabels = "labels"
	formatQASM   = "qasm"
	formatWire   = "wire"
)

var errUsage = errors.New("usage")

// options holds the parsed command line.
type options struct {
	bits    bitmap.Dense
	bases   bitmap.Dense
	format  string
	verbose bool
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	logger, lErr := newLogger(opts.verbose)
	if lErr != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", lErr)
		os.Exit(1)
	}
	defer logger.Sync()
	if err != nil {
		logger.Error("parsing flags", zap.Error(err))
		os.Exit(2)
	}
	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Error("preparing states", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("prepare", flag.ContinueOnError)
	bits := fs.String("bits", "", "The bits to encode, as a string of 0s and 1s. Spaces are ignored.")
	bases := fs.String("bases", "", "The basis for each bit: 0 for rectilinear, 1 for diagonal.")
	format := fs.String("format", formatLabels, "Output format, one of labels, qasm, wire.")
	verbose := fs.BoolP("verbose", "v", false, "Log at debug level.")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{format: *format, verbose: *verbose}
	var err error
	if opts.bits, err = bitmap.FromString(*bits); err != nil {
		return opts, fmt.Errorf("%w: --bits: %v", errUsage, err)
	}
	if opts.bases, err = bitmap.FromString(*bases); err != nil {
		return opts, fmt.Errorf("%w: --bases: %v", errUsage, err)
	}
	switch opts.format {
	case formatLabels, formatQASM, formatWire:
	default:
		return opts, fmt.Errorf("%w: unknown --format %q", errUsage, opts.format)
	}
	return opts, nil
}

func run(opts options, w io.Writer, logger *zap.Logger) error {
	logger.Debug("encoding register",
		zap.Stringer("bits", opts.bits),
		zap.Stringer("bases", opts.bases),
		zap.Int("ones", bitmap.CountOnes(opts.bits)),
		zap.Int("diagonal", bitmap.CountOnes(opts.bases)),
		zap.String("format", opts.format))

	if opts.format == formatLabels {
		labels, err := bb84.LabelsOf(opts.bits, opts.bases)
		if err != nil {
			return err
		}
		strs := make([]string, 0, len(labels))
		for _, l := range labels {
			strs = append(strs, string(l))
		}
		_, err = fmt.Fprintln(w, strings.Join(strs, " "))
		return err
	}

	c, err := bb84.EncodeRegister(opts.bits, opts.bases, circuit.New(opts.bits.Size()))
	if err != nil {
		return err
	}
	logger.Debug("circuit prepared", zap.Int("qubits", c.Qubits()), zap.Int("gates", c.Len()))

	switch opts.format {
	case formatQASM:
		_, err = io.WriteString(w, c.QASM())
	case formatWire:
		var buf bytes.Buffer
		if _, err = c.WriteTo(&buf); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(buf.Bytes()))
	}
	return err
}
