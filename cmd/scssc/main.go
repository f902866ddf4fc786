// Command scssc is the single-argument CLI entry point: it reads one
// positional argument (the SCSS-subset source), compiles it, and writes
// the resulting CSS to stdout (or a file, with -o). Built on
// github.com/urfave/cli/v2.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/stylekit/scssc/internal/errs"
	"github.com/stylekit/scssc/internal/logger"
	"github.com/stylekit/scssc/pkg/api"
)

func main() {
	app := &cli.App{
		Name:      "scssc",
		Usage:     "compile a SCSS-subset source string to flat CSS",
		UsageText: "scssc [options] <source>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log each compiler stage to stderr",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write compiled CSS to FILE instead of stdout",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		// Missing argument is permissive: print a usage hint and exit 0.
		fmt.Fprintln(os.Stderr, "usage: scssc [options] <source>")
		return nil
	}

	source := c.Args().First()
	css, err := api.CompileWithOptions(source, api.Options{Verbose: c.Bool("verbose")})
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	out := os.Stdout
	if path := c.String("output"); path != "" {
		f, ferr := os.Create(path)
		if ferr != nil {
			printError(ferr)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	fmt.Fprint(out, css)
	return nil
}

// printError writes the error kind to stderr, colored if stderr is a
// terminal. The pipeline short-circuits on the first error, so a Log
// here only ever holds a single message by the time it's rendered.
func printError(err error) {
	log := logger.NewLog()
	log.AddError(logger.Loc{}, errorDetail(err))

	colors := logger.ColorsForFile(os.Stderr)
	w := logger.Writer(os.Stderr)
	for _, msg := range log.Msgs() {
		fmt.Fprint(w, msg.String(colors))
	}
}

func errorDetail(err error) string {
	if cerr, ok := err.(*errs.CompileError); ok {
		return cerr.Error()
	}
	return err.Error()
}
