// Package api is the public library entry point: a single Compile
// function composing the tokenizer, parser, resolver, emitter, and
// printer into one pure function of its input string, a thin facade
// over the internal pipeline packages that the CLI and any embedder
// both call through.
package api

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stylekit/scssc/internal/css_lexer"
	"github.com/stylekit/scssc/internal/css_parser"
	"github.com/stylekit/scssc/internal/css_printer"
	"github.com/stylekit/scssc/internal/css_resolver"
	"github.com/stylekit/scssc/internal/logger"
)

// Options controls ambient behavior that never changes the compiled
// output, only how much is reported about producing it.
type Options struct {
	// Verbose routes per-stage operational logging (token count,
	// top-level rule and variable counts, flat rule count) to stderr via
	// zap. It is off by default.
	Verbose bool
}

// Compile is the library entry point: compile(input) -> bytes | Error.
// It is a pure function of input given the process's allocator: no
// background tasks, no I/O, no shared state across calls.
func Compile(input string) (string, error) {
	return CompileWithOptions(input, Options{})
}

// CompileWithOptions runs the full pipeline: Tokenize ← Parse ← Resolve,
// Emit ← Print. The pipeline short-circuits on the first error produced
// by any stage; no partial output is ever returned.
func CompileWithOptions(input string, opts Options) (string, error) {
	zlog := newOperationalLogger(opts.Verbose)
	defer zlog.Sync()

	source := logger.Source{Contents: input}

	tz, err := css_lexer.Tokenize(source)
	if err != nil {
		return "", err
	}
	zlog.Debug("tokenized", zap.Int("tokens", len(tz.Tokens)))

	sheet, err := css_parser.Parse(tz)
	if err != nil {
		return "", err
	}
	zlog.Debug("parsed", zap.Int("top-level rules", len(sheet.Rules)), zap.Int("top-level variables", len(sheet.Variables)))

	if err := css_resolver.Resolve(sheet); err != nil {
		return "", err
	}
	zlog.Debug("resolved variable references")

	flat := css_printer.Emit(sheet)
	zlog.Debug("flattened rule tree", zap.Int("flat rules", len(flat)))

	return css_printer.Print(flat), nil
}

// newOperationalLogger builds a console zap logger: a development
// encoder with color-aware level encoding gated on whether stderr is a
// terminal, routed through stderr only. When verbose is false this is a
// no-op logger so the Debug calls above cost nothing.
func newOperationalLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = zapcore.OmitKey
	encoderConfig.CallerKey = zapcore.OmitKey
	if logger.SupportsColor(os.Stderr) {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(os.Stderr)),
		zap.DebugLevel,
	)
	return zap.New(core)
}
