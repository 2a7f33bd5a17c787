package main

import (
	"slices"
	"strings"

	"github.com/mgomes/monkey/monkey"
)

// completionCandidates returns keywords, builtins and bound names that start
// with prefix, sorted and without duplicates.
func completionCandidates(engine *monkey.Engine, env *monkey.Env, prefix string) []string {
	if prefix == "" {
		return nil
	}
	var out []string
	add := func(names []string) {
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				out = append(out, name)
			}
		}
	}
	add(monkey.Keywords())
	add(engine.Builtins())
	if env != nil {
		add(env.Names())
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// splitTrailingWord splits input before the identifier characters at its end.
func splitTrailingWord(input string) (head, word string) {
	i := len(input)
	for i > 0 && isIdentByte(input[i-1]) {
		i--
	}
	return input[:i], input[i:]
}

func isIdentByte(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}
