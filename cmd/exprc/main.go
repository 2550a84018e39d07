// Command exprc is a standalone command line front end for the
// expression engine: it parses, type-checks and evaluates a single
// expression against an optional zoom level and feature, without
// needing a host map style engine to supply collaborators.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/styleexpr/exprlang/internal/cache"
	"github.com/styleexpr/exprlang/internal/compile"
	"github.com/styleexpr/exprlang/internal/config"
	"github.com/styleexpr/exprlang/internal/defaults"
	"github.com/styleexpr/exprlang/internal/etypes"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if handleHelp() {
		return
	}
	if handleCheck() {
		return
	}
	if handleEval() {
		return
	}

	fmt.Fprintln(os.Stderr, "Usage: exprc check|eval <expression.json> [flags]")
	fmt.Fprintln(os.Stderr, "Run 'exprc -help' for details.")
	os.Exit(1)
}

func handleHelp() bool {
	if len(os.Args) < 2 {
		return false
	}
	if os.Args[1] != "-help" && os.Args[1] != "--help" && os.Args[1] != "help" {
		return false
	}
	fmt.Print(usage)
	return true
}

const usage = `exprc - compile and evaluate a style expression

Usage:
  exprc check <expression.json> [-type number|string|boolean|color|object|value]
  exprc eval  <expression.json> [-type <type>] [-zoom N] [-feature <feature.json>]

Flags:
  -type     expected result type (default: value, meaning any type)
  -zoom     zoom level used to evaluate zoom-dependent expressions (default: 0)
  -feature  path to a JSON object with "properties", "geometry_type" and "id"
  -debug    re-panic instead of printing "Internal error" on a crash

With no <expression.json> argument, the expression is read from stdin.
`

func handleCheck() bool {
	if len(os.Args) < 2 || os.Args[1] != "check" {
		return false
	}
	runCheckOrEval(os.Args[2:], false)
	return true
}

func handleEval() bool {
	if len(os.Args) < 2 || os.Args[1] != "eval" {
		return false
	}
	runCheckOrEval(os.Args[2:], true)
	return true
}

func runCheckOrEval(args []string, evaluate bool) {
	var exprPath, typeName, featurePath string
	var zoom float64
	typeName = "value"

	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-type", "--type":
			i++
			if i >= len(args) {
				fatal("flag %s requires a value", "-type")
			}
			typeName = args[i]
		case "-zoom", "--zoom":
			i++
			if i >= len(args) {
				fatal("flag %s requires a value", "-zoom")
			}
			v, err := strconv.ParseFloat(args[i], 64)
			if err != nil {
				fatal("invalid -zoom value %q: %v", args[i], err)
			}
			zoom = v
		case "-feature", "--feature":
			i++
			if i >= len(args) {
				fatal("flag %s requires a value", "-feature")
			}
			featurePath = args[i]
		case "-debug", "--debug":
			// the deferred recover in main re-panics when DEBUG=1
			os.Setenv("DEBUG", "1")
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) > 0 {
		exprPath = positional[0]
	}

	raw, err := readExpression(exprPath)
	if err != nil {
		fatal("%v", err)
	}

	expected, err := parseExpectedType(typeName)
	if err != nil {
		fatal("%v", err)
	}

	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		fatal("loading config: %v", err)
	}

	var store *cache.Store
	var cacheKey string
	if cfg.Cache.Enabled {
		store, err = cache.Open(cfg.Cache.Path)
		if err != nil {
			fatal("opening cache: %v", err)
		}
		defer store.Close()

		canonical, err := json.Marshal(raw)
		if err != nil {
			fatal("canonicalizing expression: %v", err)
		}
		cacheKey = cache.Key(canonical, typeName)
		if entry, ok, err := store.Get(cacheKey); err == nil && ok && len(entry.Errors) > 0 {
			for _, msg := range entry.Errors {
				fmt.Fprintf(os.Stderr, "error (cached): %s\n", msg)
			}
			os.Exit(1)
		}
	}

	res := compile.Compile(raw, expected, defaults.Options())
	if store != nil {
		errs := make([]string, len(res.Errors))
		for i, e := range res.Errors {
			errs[i] = fmt.Sprintf("%s: %s", e.Key, e.Error)
		}
		resultType := ""
		if res.Ok {
			resultType = res.Type.String()
		}
		_ = store.Put(cacheKey, cache.Entry{
			ResultType:        resultType,
			IsFeatureConstant: res.IsFeatureConstant,
			IsZoomConstant:    res.IsZoomConstant,
			Errors:            errs,
		})
	}
	if !res.Ok {
		printErrors(res)
		os.Exit(1)
	}

	if !evaluate {
		fmt.Printf("ok: type=%s feature-constant=%v zoom-constant=%v\n",
			res.Type, res.IsFeatureConstant, res.IsZoomConstant)
		return
	}

	feature := compile.Feature{}
	if featurePath != "" {
		feature, err = readFeature(featurePath)
		if err != nil {
			fatal("%v", err)
		}
	}

	value, err := res.Value(zoom, feature)
	if err != nil {
		fatal("evaluation failed: %v", err)
	}

	out, err := json.Marshal(value)
	if err != nil {
		fatal("encoding result: %v", err)
	}
	fmt.Println(string(out))
}

func readExpression(path string) (any, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading expression: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing expression json: %w", err)
	}
	return raw, nil
}

func readFeature(path string) (compile.Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return compile.Feature{}, fmt.Errorf("reading feature: %w", err)
	}

	var decoded struct {
		Properties   map[string]any `json:"properties"`
		GeometryType string         `json:"geometry_type"`
		ID           any            `json:"id"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return compile.Feature{}, fmt.Errorf("parsing feature json: %w", err)
	}
	return compile.Feature{
		Properties:   decoded.Properties,
		GeometryType: decoded.GeometryType,
		ID:           decoded.ID,
	}, nil
}

func parseExpectedType(name string) (etypes.Type, error) {
	switch strings.ToLower(name) {
	case "", "value":
		return etypes.ValueType, nil
	case "number":
		return etypes.Number, nil
	case "string":
		return etypes.String, nil
	case "boolean":
		return etypes.Boolean, nil
	case "color":
		return etypes.Color, nil
	case "object":
		return etypes.Object, nil
	default:
		return nil, fmt.Errorf("unknown -type %q", name)
	}
}

func printErrors(res compile.Result) {
	colorize := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	for _, e := range res.Errors {
		if colorize {
			fmt.Fprintf(os.Stderr, "\x1b[31merror\x1b[0m at %s: %s\n", e.Key, e.Error)
		} else {
			fmt.Fprintf(os.Stderr, "error at %s: %s\n", e.Key, e.Error)
		}
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
