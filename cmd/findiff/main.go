// Command findiff derives finite-difference differentiation formulas.
//
// One-shot use:
//
//	findiff -n 2 -s "-1:1"
//	findiff -n 1 -s "-2,-1,0,1,2" -json
//	findiff -n 3 -s "0:3" -mode search -latex
//
// Without -s the command starts an interactive shell. Environment
// defaults: FINDIFF_LOG_LEVEL, FINDIFF_MAX_TERMS, FINDIFF_DIGITS.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gitlab.com/efronlicht/enve"

	"github.com/katalvlaran/findiff/derive"
	"github.com/katalvlaran/findiff/render"
	"github.com/katalvlaran/findiff/stencil"
)

func main() {
	var (
		order   = flag.Int("n", 1, "derivative order")
		points  = flag.String("s", "", `stencil, e.g. "-2:2" or "-1,0,1" (empty starts the shell)`)
		mode    = flag.String("mode", "derive", "derive|forward|backward|search")
		terms   = flag.Int("terms", enve.Or(strconv.Atoi, "FINDIFF_MAX_TERMS", derive.DefaultMaxTerms), "Taylor term ceiling")
		digits  = flag.Int("digits", enve.Or(strconv.Atoi, "FINDIFF_DIGITS", derive.DefaultDigits), "decimal digits for weight display")
		asJSON  = flag.Bool("json", false, "print the formula as JSON")
		asLaTeX = flag.Bool("latex", false, "print the formula as LaTeX")
		level   = flag.String("level", "", "log level: trace|debug|info|warn|error")
	)
	flag.Parse()

	logg := newLogger(*level)

	eng := derive.New()
	if err := eng.SetMaxTerms(*terms); err != nil {
		logg.Fatal().Err(err).Int("terms", *terms).Msg("bad -terms")
	}
	if err := eng.SetDigits(*digits); err != nil {
		logg.Fatal().Err(err).Int("digits", *digits).Msg("bad -digits")
	}

	if *points == "" {
		shell, err := newREPL(eng, os.Stdout, logg)
		if err != nil {
			logg.Fatal().Err(err).Msg("shell init failed")
		}
		if err := shell.run(os.Stdin); err != nil {
			logg.Fatal().Err(err).Msg("shell input failed")
		}
		return
	}

	if err := oneShot(eng, logg, *mode, *order, *points, *asJSON, *asLaTeX); err != nil {
		logg.Fatal().Err(err).Msg("no formula")
	}
}

// oneShot runs a single derivation request and prints it in the selected
// format on stdout.
func oneShot(eng *derive.Engine, logg zerolog.Logger, mode string, order int, points string, asJSON, asLaTeX bool) error {
	s, err := stencil.Parse(points)
	if err != nil {
		return err
	}
	logg.Debug().Int("order", order).Str("stencil", s.String()).Str("mode", mode).Msg("request")

	var res *derive.Result
	switch mode {
	case "derive":
		res, err = eng.Derive(order, s...)
	case "forward":
		res, err = eng.Search(derive.Forward, order, s...)
	case "backward":
		res, err = eng.Search(derive.Backward, order, s...)
	case "search":
		res, err = eng.Search(derive.Bidirectional, order, s...)
	default:
		return fmt.Errorf("unknown -mode %q", mode)
	}
	if err != nil {
		return err
	}
	logg.Debug().Str("result", res.String()).Msg("derived")

	switch {
	case asJSON:
		b, err := render.JSON(res)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	case asLaTeX:
		line, err := render.LaTeX(res)
		if err != nil {
			return err
		}
		fmt.Println(line)
		return nil
	default:
		return printFormula(os.Stdout, eng, res)
	}
}
