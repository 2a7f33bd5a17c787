package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/mgomes/monkey/monkey"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "tokens":
		return tokensCommand(args[2:])
	case "ast":
		return astCommand(args[2:])
	case "analyze":
		return analyzeCommand(args[2:])
	case "lsp":
		return runLSP()
	case "repl":
		return replCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	configPath := fs.String("config", "", "YAML file with engine limits")
	checkOnly := fs.Bool("check", false, "only parse the script without evaluating it")
	debug := fs.Bool("debug", false, "log engine activity to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	scriptPath, source, err := readScript("run", fs.Args())
	if err != nil {
		return err
	}
	cfg, err := loadCLIConfig(*configPath)
	if err != nil {
		return err
	}

	engineCfg := cfg.Engine
	engineCfg.Stdout = os.Stdout
	if *debug {
		engineCfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})).
			With("script", scriptPath)
	}
	engine, err := monkey.NewEngine(engineCfg)
	if err != nil {
		return fmt.Errorf("configure engine: %w", err)
	}

	if *checkOnly {
		if _, err := engine.Compile(source); err != nil {
			return fmt.Errorf("compile failed: %w", err)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := engine.Run(ctx, source, monkey.NewEnv())
	if err != nil {
		if monkey.IsRuntimeError(err) {
			return fmt.Errorf("execution failed: ERROR: %w", err)
		}
		return fmt.Errorf("compile failed: %w", err)
	}
	if !result.IsNull() {
		fmt.Println(result.String())
	}
	return nil
}

func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, source, err := readScript("tokens", fs.Args())
	if err != nil {
		return err
	}

	for _, tok := range monkey.Tokenize(source) {
		fmt.Println(strings.TrimSpace(fmt.Sprintf("%d:%d %s %s", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)))
	}
	return nil
}

func astCommand(args []string) error {
	fs := flag.NewFlagSet("ast", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, source, err := readScript("ast", fs.Args())
	if err != nil {
		return err
	}

	program, err := monkey.MustNewEngine(monkey.Config{}).Compile(source)
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}
	for _, stmt := range program.Statements {
		fmt.Println(stmt.String())
	}
	return nil
}

// readScript resolves and reads the script named by the first positional
// argument of a subcommand.
func readScript(command string, args []string) (string, string, error) {
	if len(args) == 0 {
		return "", "", fmt.Errorf("monkey %s: script path required", command)
	}
	scriptPath, err := filepath.Abs(args[0])
	if err != nil {
		return "", "", fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return "", "", fmt.Errorf("read script: %w", err)
	}
	return scriptPath, string(input), nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [script]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run [-config file] [-check] [-debug] <script>")
	fmt.Fprintln(os.Stderr, "    evaluate a script and print its result")
	fmt.Fprintln(os.Stderr, "  tokens <script>")
	fmt.Fprintln(os.Stderr, "    print the token stream")
	fmt.Fprintln(os.Stderr, "  ast <script>")
	fmt.Fprintln(os.Stderr, "    print the parsed statements in parenthesized form")
	fmt.Fprintln(os.Stderr, "  analyze <script>")
	fmt.Fprintln(os.Stderr, "    report unreachable code, arity mismatches and shadowed builtins")
	fmt.Fprintln(os.Stderr, "  repl [-plain] [-config file]")
	fmt.Fprintln(os.Stderr, "    start an interactive session")
	fmt.Fprintln(os.Stderr, "  lsp")
	fmt.Fprintln(os.Stderr, "    serve the language server protocol over stdio")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
