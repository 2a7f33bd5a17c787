package monkey

import (
	"fmt"
	"strings"
)

// CompileError reports every syntax error found in a source text.
type CompileError struct {
	Errors []*ParseError
	source string
}

func (ce *CompileError) Error() string {
	var b strings.Builder
	for i, err := range ce.Errors {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(err.Error())
		if frame := formatCodeFrame(ce.source, err.Pos); frame != "" {
			b.WriteString("\n")
			b.WriteString(frame)
		}
	}
	return b.String()
}

// Messages returns the error messages without positions, in source order.
func (ce *CompileError) Messages() []string {
	msgs := make([]string, len(ce.Errors))
	for i, err := range ce.Errors {
		msgs[i] = err.Msg
	}
	return msgs
}

// RuntimeError is an ERROR value that reached the end of a program.
type RuntimeError struct {
	Message   string
	Pos       Position
	CodeFrame string
	Frames    []StackFrame
}

const (
	runtimeErrorFrameHead = 8
	runtimeErrorFrameTail = 8
)

// newRuntimeError renders the code frame from the source the error was
// raised in, which may be an earlier input than the one just run.
func newRuntimeError(val Value) *RuntimeError {
	return &RuntimeError{
		Message:   val.ErrorMessage(),
		Pos:       val.ErrorPos(),
		CodeFrame: formatCodeFrame(val.errorSource(), val.ErrorPos()),
		Frames:    val.ErrorFrames(),
	}
}

func (re *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(re.Message)
	if re.CodeFrame != "" {
		b.WriteString("\n")
		b.WriteString(re.CodeFrame)
	}
	renderFrame := func(frame StackFrame) {
		if frame.Pos.Line > 0 {
			fmt.Fprintf(&b, "\n  at %s (%d:%d)", frame.Function, frame.Pos.Line, frame.Pos.Column)
		} else {
			fmt.Fprintf(&b, "\n  at %s", frame.Function)
		}
	}

	if len(re.Frames) <= runtimeErrorFrameHead+runtimeErrorFrameTail {
		for _, frame := range re.Frames {
			renderFrame(frame)
		}
		return b.String()
	}

	for _, frame := range re.Frames[:runtimeErrorFrameHead] {
		renderFrame(frame)
	}
	omitted := len(re.Frames) - (runtimeErrorFrameHead + runtimeErrorFrameTail)
	fmt.Fprintf(&b, "\n  ... %d frames omitted ...", omitted)
	for _, frame := range re.Frames[len(re.Frames)-runtimeErrorFrameTail:] {
		renderFrame(frame)
	}
	return b.String()
}
