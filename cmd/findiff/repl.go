package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/findiff/derive"
	"github.com/katalvlaran/findiff/render"
	"github.com/katalvlaran/findiff/stencil"
)

// repl is one interactive session around a shared engine. Command state
// (term ceiling, digits, the remembered formula) lives in the engine so
// the REPL and one-shot paths behave identically.
type repl struct {
	eng  *derive.Engine
	out  io.Writer
	log  zerolog.Logger
	reg  *registry
	done bool
}

func newREPL(eng *derive.Engine, out io.Writer, log zerolog.Logger) (*repl, error) {
	r := &repl{eng: eng, out: out, log: log, reg: newRegistry()}
	for _, cmd := range []command{
		{name: "derive", aliases: []string{"d"}, usage: "derive <order> <stencil>", desc: "Derive a formula on the exact stencil.", run: cmdDerive},
		{name: "forward", aliases: []string{"fwd"}, usage: "forward <order> <stencil>", desc: "Derive, dropping the largest offset on failure.", run: searchCmd(derive.Forward)},
		{name: "backward", aliases: []string{"bwd"}, usage: "backward <order> <stencil>", desc: "Derive, dropping the smallest offset on failure.", run: searchCmd(derive.Backward)},
		{name: "search", aliases: []string{"bi"}, usage: "search <order> <stencil>", desc: "Derive, shrinking from both ends and keeping the better result.", run: searchCmd(derive.Bidirectional)},
		{name: "taylor", aliases: []string{"t"}, usage: "taylor <offset> <terms>", desc: "Print the Taylor row of f(x+offset*h).", run: cmdTaylor},
		{name: "combine", usage: "combine <terms> <weight@offset>...", desc: "Print the combined series of a weighted sample sum.", run: cmdCombine},
		{name: "verify", aliases: []string{"v"}, usage: "verify <order> <multiplier> <weight@offset>...", desc: "Check a hand-written formula; derive an alternative if it fails.", run: cmdVerify},
		{name: "last", aliases: []string{"l"}, usage: "last", desc: "Show the most recently derived formula.", run: cmdLast},
		{name: "terms", usage: "terms [limit]", desc: "Show or set the Taylor term ceiling.", run: cmdTerms},
		{name: "digits", usage: "digits [count]", desc: "Show or set the decimal digit budget for weight display.", run: cmdDigits},
		{name: "help", aliases: []string{"h", "?"}, usage: "help [command]", desc: "Show available commands.", run: cmdHelp},
		{name: "quit", aliases: []string{"exit", "q"}, usage: "quit", desc: "Leave the shell.", run: cmdQuit},
	} {
		if err := r.reg.register(cmd); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// run reads lines until quit or EOF. Command failures are printed and the
// loop continues; only a reader failure ends the session with an error.
func (r *repl) run(in io.Reader) error {
	fmt.Fprintln(r.out, "findiff interactive shell. Type 'help' for commands.")

	sc := bufio.NewScanner(in)
	for !r.done {
		fmt.Fprint(r.out, "findiff> ")
		if !sc.Scan() {
			fmt.Fprintln(r.out)
			break
		}
		if err := r.dispatch(sc.Text()); err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
			r.log.Debug().Err(err).Msg("command failed")
		}
	}
	return sc.Err()
}

// dispatch tokenizes one line and runs the resolved handler.
func (r *repl) dispatch(line string) error {
	tokens, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}
	cmd, ok := r.reg.resolve(tokens[0])
	if !ok {
		return fmt.Errorf("unknown command %q (try 'help')", tokens[0])
	}
	return cmd.run(r, tokens[1:])
}

func (r *repl) printResult(res *derive.Result) error {
	return printFormula(r.out, r.eng, res)
}

// printFormula shows a formula the way both the REPL and the one-shot
// path do: exact text, decimal weights at the engine's digit budget,
// dropped points if any.
func printFormula(out io.Writer, eng *derive.Engine, res *derive.Result) error {
	line, err := render.Text(res)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, line)

	ws, err := render.Decimals(res, eng.Digits())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "weights: %s\n", strings.Join(ws, ", "))

	if len(res.Dropped) > 0 {
		fmt.Fprintf(out, "dropped: %v\n", res.Dropped)
	}
	return nil
}

func cmdDerive(r *repl, args []string) error {
	n, s, err := orderAndStencil(args, "derive <order> <stencil>")
	if err != nil {
		return err
	}
	r.log.Debug().Int("order", n).Str("stencil", s.String()).Msg("derive")

	res, err := r.eng.Derive(n, s...)
	if err != nil {
		return err
	}
	return r.printResult(res)
}

// searchCmd builds the handler for one search strategy.
func searchCmd(strat derive.Strategy) replFunc {
	return func(r *repl, args []string) error {
		n, s, err := orderAndStencil(args, strat.String()+" <order> <stencil>")
		if err != nil {
			return err
		}
		r.log.Debug().Int("order", n).Str("stencil", s.String()).Str("strategy", strat.String()).Msg("search")

		res, err := r.eng.Search(strat, n, s...)
		if err != nil {
			return err
		}
		return r.printResult(res)
	}
}

func cmdTaylor(r *repl, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: taylor <offset> <terms>")
	}
	offset, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad offset %q", args[0])
	}
	terms, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad term count %q", args[1])
	}

	row, err := r.eng.TaylorRow(offset, terms)
	if err != nil {
		return err
	}
	printSeries(r.out, row)
	return nil
}

func cmdCombine(r *repl, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: combine <terms> <weight@offset>...")
	}
	terms, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad term count %q", args[0])
	}
	weights, offsets, err := parsePairs(args[1:])
	if err != nil {
		return err
	}

	sum, err := r.eng.CombineSeries(weights, offsets, terms)
	if err != nil {
		return err
	}
	printSeries(r.out, sum)
	return nil
}

func cmdVerify(r *repl, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: verify <order> <multiplier> <weight@offset>...")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad order %q", args[0])
	}
	m, ok := new(big.Rat).SetString(args[1])
	if !ok {
		return fmt.Errorf("bad multiplier %q", args[1])
	}
	weights, offsets, err := parsePairs(args[2:])
	if err != nil {
		return err
	}

	v, err := r.eng.Verify(n, offsets, weights, m)
	if err != nil {
		return err
	}
	if v.Confirmed {
		fmt.Fprintf(r.out, "confirmed, error term O(h^%d)\n", v.Result.TruncationOrder)
		return nil
	}

	fmt.Fprintf(r.out, "rejected: order %d term expands to %s\n", v.FailedOrder, v.Got.RatString())
	if !v.Derived {
		fmt.Fprintf(r.out, "no alternative on this stencil: %v\n", v.DeriveFailure)
		return nil
	}
	fmt.Fprintln(r.out, "alternative:")
	return r.printResult(v.Result)
}

func cmdLast(r *repl, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: last")
	}
	res, err := r.eng.Last()
	if err != nil {
		return err
	}
	return r.printResult(res)
}

func cmdTerms(r *repl, args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintf(r.out, "terms: %d\n", r.eng.MaxTerms())
		return nil
	case 1:
		limit, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad term limit %q", args[0])
		}
		if err := r.eng.SetMaxTerms(limit); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "terms: %d\n", limit)
		return nil
	default:
		return fmt.Errorf("usage: terms [limit]")
	}
}

func cmdDigits(r *repl, args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintf(r.out, "digits: %d\n", r.eng.Digits())
		return nil
	case 1:
		digits, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad digit count %q", args[0])
		}
		if err := r.eng.SetDigits(digits); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "digits: %d\n", digits)
		return nil
	default:
		return fmt.Errorf("usage: digits [count]")
	}
}

func cmdHelp(r *repl, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: help [command]")
	}
	if len(args) == 1 {
		cmd, ok := r.reg.resolve(args[0])
		if !ok {
			return fmt.Errorf("unknown command %q", args[0])
		}
		fmt.Fprintf(r.out, "usage: %s\n%s\n", cmd.usage, cmd.desc)
		if len(cmd.aliases) > 0 {
			fmt.Fprintf(r.out, "aliases: %s\n", strings.Join(cmd.aliases, ", "))
		}
		return nil
	}
	for _, name := range r.reg.names() {
		cmd, ok := r.reg.resolve(name)
		if !ok {
			continue
		}
		fmt.Fprintf(r.out, "%-9s %s\n", cmd.name, cmd.desc)
	}
	return nil
}

func cmdQuit(r *repl, args []string) error {
	r.done = true
	return nil
}

// orderAndStencil parses "<order> <stencil...>" with the stencil possibly
// split across tokens ("-1 0 1" as well as "-1,0,1" or "-2:2").
func orderAndStencil(args []string, usage string) (int, stencil.Stencil, error) {
	if len(args) < 2 {
		return 0, nil, fmt.Errorf("usage: %s", usage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, fmt.Errorf("bad order %q", args[0])
	}
	s, err := stencil.Parse(strings.Join(args[1:], " "))
	if err != nil {
		return 0, nil, err
	}
	return n, s, nil
}

// parsePairs reads weight@offset tokens, e.g. "1/2@-1 -1@0 1/2@1".
func parsePairs(tokens []string) ([]*big.Rat, []int, error) {
	weights := make([]*big.Rat, 0, len(tokens))
	offsets := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.SplitN(tok, "@", 2)
		if len(parts) != 2 {
			return nil, nil, fmt.Errorf("bad pair %q, want weight@offset", tok)
		}
		w, ok := new(big.Rat).SetString(parts[0])
		if !ok {
			return nil, nil, fmt.Errorf("bad weight %q", parts[0])
		}
		offset, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, nil, fmt.Errorf("bad offset %q", parts[1])
		}
		weights = append(weights, w)
		offsets = append(offsets, offset)
	}
	return weights, offsets, nil
}

// printSeries writes rational series coefficients one order per line.
func printSeries(out io.Writer, coeffs []*big.Rat) {
	for t, c := range coeffs {
		fmt.Fprintf(out, "h^%d: %s\n", t, c.RatString())
	}
}
