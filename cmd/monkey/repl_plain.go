package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/mgomes/monkey/monkey"
)

const replBanner = "Welcome to the Monkey programming language!"

// runPlainREPL is the line-mode session used with -plain or when stdin is not
// a terminal.
func runPlainREPL(engine *monkey.Engine, settings replSettings) error {
	fmt.Println(replBanner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if settings.HistoryFile != "" {
		if f, err := os.Open(settings.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(settings.HistoryFile); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	env := monkey.NewEnv()
	ln.SetCompleter(func(line string) []string {
		head, word := splitTrailingWord(line)
		candidates := completionCandidates(engine, env, word)
		for i, c := range candidates {
			candidates[i] = head + c
		}
		return candidates
	})

	for {
		line, err := ln.Prompt(settings.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.TrimSpace(line) == ":quit" {
			return nil
		}
		evalLine(context.Background(), engine, env, line, os.Stdout)
	}
}

// evalLine evaluates one REPL input in env. Parse errors are listed one per
// line with a leading tab and nothing is evaluated. NULL results print nothing.
func evalLine(ctx context.Context, engine *monkey.Engine, env *monkey.Env, line string, out io.Writer) {
	program, err := engine.Compile(line)
	if err != nil {
		var ce *monkey.CompileError
		if errors.As(err, &ce) {
			for _, msg := range ce.Messages() {
				fmt.Fprintf(out, "\t%s\n", msg)
			}
			return
		}
		fmt.Fprintln(out, err)
		return
	}

	result := engine.EvalContext(ctx, program, env)
	if !result.IsNull() {
		fmt.Fprintln(out, result.Inspect())
	}
}
