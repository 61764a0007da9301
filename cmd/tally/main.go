// Tally is a terminal front end for the string-calculator engine in
// pkg/calc. With arguments it evaluates each one and exits; with -samples it
// runs every input listed in a YAML file through one engine instance; with
// no arguments it starts an interactive read-eval-print loop. "tally init"
// writes a starter samples file.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/tally/pkg/calc"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "init" {
		initCmd := flag.NewFlagSet("init", flag.ExitOnError)
		initCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: tally init [flags]\n\nWrite a starter samples file interactively.\n\nFlags:\n")
			initCmd.PrintDefaults()
		}
		out := initCmd.String("out", "tally.yaml", "path to write the samples file")
		_ = initCmd.Parse(os.Args[2:])

		if err := runInit(*out); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tally [flags] [input ...]\n       tally <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init    Write a starter samples file interactively\n")
	}

	samplesPath := flag.String("samples", "", "path to a samples YAML file (overrides $TALLY_SAMPLES)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	noColor := flag.Bool("no-color", false, "disable styled output (or set $TALLY_NO_COLOR)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts, err := loadEnvOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Flags win over environment values.
	if *samplesPath != "" {
		opts.Samples = *samplesPath
	}
	if *noColor {
		opts.NoColor = true
	}

	if err := run(opts, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, args []string) error {
	c := calc.New()
	st := newStyles(!opts.NoColor)

	switch {
	case len(args) > 0:
		return runArgs(c, st, args)
	case opts.Samples != "":
		return runSamples(c, st, opts.Samples)
	default:
		return runInteractive(c, st)
	}
}

// runArgs evaluates each command-line argument. Escape sequences are decoded
// first so delimiter headers fit on one shell line.
func runArgs(c *calc.Calculator, st styleSet, args []string) error {
	inputs := make([]string, len(args))
	for i, a := range args {
		inputs[i] = decodeEscapes(a)
	}

	evalAll(c, st, inputs)

	return nil
}

// runSamples evaluates every input listed in a samples YAML file.
func runSamples(c *calc.Calculator, st styleSet, path string) error {
	inputs, err := loadSamples(path)
	if err != nil {
		return err
	}

	fmt.Println(st.banner.Render(fmt.Sprintf("tally: %d samples from %s", len(inputs), path)))
	evalAll(c, st, inputs)

	return nil
}

// evalAll runs inputs through the calculator and prints one line per input
// plus a summary. The notified count comes from a registered listener, so
// the summary also exercises the engine's side-channel.
func evalAll(c *calc.Calculator, st styleSet, inputs []string) {
	notified := 0
	sub := c.AddListener(func(string, int) { notified++ })
	defer c.RemoveListener(sub)

	width := 0
	for _, in := range inputs {
		if w := runeDisplayWidth(in); w > width {
			width = w
		}
	}

	failed := 0
	for _, in := range inputs {
		sum, err := c.Evaluate(in)
		if err != nil {
			failed++
		}
		fmt.Println(formatResultLine(st, in, width, sum, err))
	}

	fmt.Println(st.status.Render(fmt.Sprintf(
		"%d calls, %d ok, %d failed", c.CalledCount(), notified, failed)))
}

// runInteractive starts the bubbletea REPL.
func runInteractive(c *calc.Calculator, st styleSet) error {
	initMarkdownRenderer()

	p := tea.NewProgram(newReplModel(c, st))
	_, err := p.Run()

	return err
}
