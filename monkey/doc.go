// Package monkey implements an interpreter for the Monkey language, a small
// dynamically typed, expression-oriented language. It supports:
//   - Integers, booleans, strings and arrays, with NULL for absent results.
//   - let bindings and first-class functions with lexical closures.
//   - Prefix and infix operators, if/else expressions and early return.
//   - Index expressions on arrays and calls to native builtins such as len,
//     first, last, rest, push and puts.
//
// Source is tokenized by Lexer, parsed by a Pratt Parser that keeps going
// after syntax errors, and evaluated by walking the AST. Runtime failures are
// ERROR values rather than Go errors; Engine.Run converts a final ERROR into
// a *RuntimeError at the API boundary.
package monkey
