package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/dimex"
	"github.com/npillmayer/dimex/engine"
	"github.com/npillmayer/dimex/tables"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/language"
)

const usage = `dimex - find numerals and ordinals in text

Usage:
  dimex [options] [text ...]

Options:
  --locale <tag>        Locale of the input (defaults to the environment's locale)
  --dim <dimension>     numeral, ordinal or any (default)
  --lexicon <file>      YAML lexicon extending the built-in rules (optional)
  --max-iterations <n>  Maximum number of rule passes (default depends on input length)
  --trace <level>       Trace level: Error, Info or Debug (default Error)
  --locales             List the locales with built-in rules

Without text arguments, every line of stdin is parsed. Found tokens are
written as one JSON object per line.

Examples:
  dimex --locale ar "خمسة و عشرون"
  echo "kahekümne kolmas" | dimex --locale et --dim ordinal
`

type options struct {
	locale        string
	dim           string
	lexicon       string
	maxIterations int
	trace         string
	listLocales   bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.locale, "locale", "", "Locale of the input")
	flag.StringVar(&opts.dim, "dim", "any", "Dimension to extract")
	flag.StringVar(&opts.lexicon, "lexicon", "", "YAML lexicon file (optional)")
	flag.IntVar(&opts.maxIterations, "max-iterations", 0, "Maximum number of rule passes")
	flag.StringVar(&opts.trace, "trace", "Error", "Trace level")
	flag.BoolVar(&opts.listLocales, "locales", false, "List locales with built-in rules")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(opts.trace))

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		in = strings.NewReader(strings.Join(flag.Args(), "\n"))
	}
	if err := run(opts, in, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

func run(opts options, in io.Reader, out io.Writer) error {
	reg := tables.Default()
	if opts.listLocales {
		for _, tag := range reg.Locales() {
			fmt.Fprintf(out, "%s\t%v\n", tag, reg.Dimensions(tag))
		}
		return nil
	}
	locale := tables.FromEnvironment()
	if opts.locale != "" {
		tag, err := language.Parse(opts.locale)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", opts.locale, err)
		}
		locale = tag
	}
	dim, err := dimex.ParseDimension(opts.dim)
	if err != nil {
		return err
	}
	if opts.lexicon != "" {
		if err = reg.LoadLexiconFile(opts.lexicon); err != nil {
			return err
		}
	}
	var parseOpts []engine.Option
	if opts.maxIterations > 0 {
		parseOpts = append(parseOpts, engine.MaxIterations(opts.maxIterations))
	}
	e := engine.New(reg)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		tokens, err := e.Parse(line, locale, dim, parseOpts...)
		if err != nil {
			return err
		}
		for _, t := range tokens {
			if err = enc.Encode(t); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
