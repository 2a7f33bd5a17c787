package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/mgomes/monkey/monkey"
)

const (
	severityError   = 1
	severityWarning = 2

	completionKindFunction = 3
	completionKindVariable = 6
	completionKindKeyword  = 14
)

type lspInboundMessage struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method,omitempty"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type lspResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type lspOutboundMessage struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      *json.RawMessage  `json:"id,omitempty"`
	Method  string            `json:"method,omitempty"`
	Params  any               `json:"params,omitempty"`
	Result  any               `json:"result,omitempty"`
	Error   *lspResponseError `json:"error,omitempty"`
}

type lspDidOpenParams struct {
	TextDocument struct {
		URI  string `json:"uri"`
		Text string `json:"text"`
	} `json:"textDocument"`
}

type lspDidChangeParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	ContentChanges []struct {
		Text string `json:"text"`
	} `json:"contentChanges"`
}

type lspTextDocumentPositionParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	Position struct {
		Line      int `json:"line"`
		Character int `json:"character"`
	} `json:"position"`
}

type lspServer struct {
	reader *bufio.Reader
	writer *bufio.Writer
	engine *monkey.Engine
	docs   map[string]string
}

func runLSP() error {
	server := &lspServer{
		reader: bufio.NewReader(os.Stdin),
		writer: bufio.NewWriter(os.Stdout),
		engine: monkey.MustNewEngine(monkey.Config{}),
		docs:   make(map[string]string),
	}
	return server.serve()
}

func (s *lspServer) serve() error {
	for {
		payload, err := s.readPayload()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var incoming lspInboundMessage
		if err := json.Unmarshal(payload, &incoming); err != nil {
			continue
		}

		for _, msg := range s.handleMessage(incoming) {
			if err := s.writePayload(msg); err != nil {
				return err
			}
		}

		if incoming.Method == "exit" {
			return nil
		}
	}
}

func (s *lspServer) handleMessage(incoming lspInboundMessage) []lspOutboundMessage {
	switch incoming.Method {
	case "initialize":
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Result: map[string]any{
					"capabilities": map[string]any{
						"textDocumentSync": 1,
						"hoverProvider":    true,
						"completionProvider": map[string]any{
							"resolveProvider": false,
						},
					},
					"serverInfo": map[string]any{"name": "monkey-lsp"},
				},
			},
		}
	case "initialized", "exit":
		return nil
	case "shutdown":
		if incoming.ID == nil {
			return nil
		}
		return []lspOutboundMessage{{JSONRPC: "2.0", ID: incoming.ID, Result: nil}}
	case "textDocument/didOpen":
		var params lspDidOpenParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return nil
		}
		s.docs[params.TextDocument.URI] = params.TextDocument.Text
		return []lspOutboundMessage{
			s.publishDiagnostics(params.TextDocument.URI, params.TextDocument.Text),
		}
	case "textDocument/didChange":
		var params lspDidChangeParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return nil
		}
		if len(params.ContentChanges) == 0 {
			return nil
		}
		latest := params.ContentChanges[len(params.ContentChanges)-1].Text
		s.docs[params.TextDocument.URI] = latest
		return []lspOutboundMessage{
			s.publishDiagnostics(params.TextDocument.URI, latest),
		}
	case "textDocument/didClose":
		var params lspDidOpenParams
		if err := json.Unmarshal(incoming.Params, &params); err == nil {
			delete(s.docs, params.TextDocument.URI)
		}
		return nil
	case "textDocument/completion":
		if incoming.ID == nil {
			return nil
		}
		var params lspTextDocumentPositionParams
		_ = json.Unmarshal(incoming.Params, &params)
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Result: map[string]any{
					"isIncomplete": false,
					"items":        completionItems(s.engine, s.docs[params.TextDocument.URI]),
				},
			},
		}
	case "textDocument/hover":
		if incoming.ID == nil {
			return nil
		}
		var params lspTextDocumentPositionParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return []lspOutboundMessage{
				{
					JSONRPC: "2.0",
					ID:      incoming.ID,
					Error:   &lspResponseError{Code: -32602, Message: "invalid hover params"},
				},
			}
		}
		source := s.docs[params.TextDocument.URI]
		word := wordAtPosition(source, params.Position.Line, params.Position.Character)
		if word == "" {
			return []lspOutboundMessage{
				{JSONRPC: "2.0", ID: incoming.ID, Result: nil},
			}
		}
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Result: map[string]any{
					"contents": map[string]any{
						"kind":  "markdown",
						"value": fmt.Sprintf("`%s`\n\nMonkey %s", word, classifyWord(s.engine, word)),
					},
				},
			},
		}
	default:
		if incoming.ID == nil {
			return nil
		}
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Error: &lspResponseError{
					Code:    -32601,
					Message: "method not found",
				},
			},
		}
	}
}

func (s *lspServer) publishDiagnostics(uri, source string) lspOutboundMessage {
	return lspOutboundMessage{
		JSONRPC: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params: map[string]any{
			"uri":         uri,
			"diagnostics": diagnosticsForSource(s.engine, source),
		},
	}
}

// diagnosticsForSource reports every parse error, or the analyze warnings
// when the source parses cleanly.
func diagnosticsForSource(engine *monkey.Engine, source string) []map[string]any {
	lines := strings.Split(source, "\n")
	program, err := engine.Compile(source)
	if err != nil {
		var ce *monkey.CompileError
		if !errors.As(err, &ce) {
			return []map[string]any{newDiagnostic(0, 0, severityError, err.Error())}
		}
		out := make([]map[string]any, 0, len(ce.Errors))
		for _, perr := range ce.Errors {
			out = append(out, diagnosticAt(lines, perr.Pos, severityError, perr.Msg))
		}
		return out
	}

	warnings := analyzeProgramWarnings(engine, program)
	out := make([]map[string]any, 0, len(warnings))
	for _, warning := range warnings {
		out = append(out, diagnosticAt(lines, warning.Pos, severityWarning, warning.Message))
	}
	return out
}

// diagnosticAt converts a 1-based lexer position, whose columns count bytes,
// into a protocol position counted in UTF-16 units.
func diagnosticAt(lines []string, pos monkey.Position, severity int, message string) map[string]any {
	line := max(0, pos.Line-1)
	return newDiagnostic(line, utf16ColumnForByte(lines, line, pos.Column), severity, message)
}

func utf16ColumnForByte(lines []string, line, column int) int {
	offset := max(0, column-1)
	if line >= len(lines) {
		return offset
	}
	text := lines[line]
	units := max(0, offset-len(text))
	for _, r := range text[:min(offset, len(text))] {
		units += utf16.RuneLen(r)
	}
	return units
}

func newDiagnostic(line, character, severity int, message string) map[string]any {
	return map[string]any{
		"range": map[string]any{
			"start": map[string]any{
				"line":      line,
				"character": character,
			},
			"end": map[string]any{
				"line":      line,
				"character": character + 1,
			},
		},
		"severity": severity,
		"source":   "monkey-lsp",
		"message":  message,
	}
}

// completionItems offers keywords, builtins and the names bound by top-level
// let statements of the open document.
func completionItems(engine *monkey.Engine, source string) []map[string]any {
	kinds := make(map[string]int)
	for _, name := range documentBindings(source) {
		kinds[name] = completionKindVariable
	}
	for _, name := range engine.Builtins() {
		kinds[name] = completionKindFunction
	}
	for _, keyword := range monkey.Keywords() {
		kinds[keyword] = completionKindKeyword
	}

	labels := make([]string, 0, len(kinds))
	for label := range kinds {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	items := make([]map[string]any, 0, len(labels))
	for _, label := range labels {
		detail := "binding"
		switch kinds[label] {
		case completionKindKeyword:
			detail = "keyword"
		case completionKindFunction:
			detail = "builtin"
		}
		items = append(items, map[string]any{
			"label":  label,
			"kind":   kinds[label],
			"detail": detail,
		})
	}
	return items
}

// documentBindings tolerates parse errors; the parser still returns every
// statement it could recover.
func documentBindings(source string) []string {
	if source == "" {
		return nil
	}
	program, _ := monkey.Parse(source)
	var names []string
	for _, stmt := range program.Statements {
		if let, ok := stmt.(*monkey.LetStatement); ok {
			names = append(names, let.Name.Name)
		}
	}
	return names
}

func classifyWord(engine *monkey.Engine, word string) string {
	if slices.Contains(monkey.Keywords(), word) {
		return "keyword"
	}
	if slices.Contains(engine.Builtins(), word) {
		return "builtin"
	}
	return "symbol"
}

// wordAtPosition finds the identifier under an LSP position. Characters are
// UTF-16 code units, as the protocol specifies.
func wordAtPosition(source string, line, character int) string {
	lines := strings.Split(source, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}

	runes := []rune(lines[line])
	if len(runes) == 0 {
		return ""
	}

	cursor := runeIndexForUTF16(runes, max(character, 0))
	if cursor == len(runes) {
		cursor--
	}
	if !isWordRune(runes[cursor]) {
		if cursor > 0 && isWordRune(runes[cursor-1]) {
			cursor--
		} else {
			return ""
		}
	}

	start := cursor
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end := cursor
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	return string(runes[start:end])
}

func runeIndexForUTF16(runes []rune, character int) int {
	units := 0
	for i, r := range runes {
		if units >= character {
			return i
		}
		units += utf16.RuneLen(r)
	}
	return len(runes)
}

func isWordRune(r rune) bool {
	return r < 0x80 && isIdentByte(byte(r))
}

func (s *lspServer) readPayload() ([]byte, error) {
	contentLength := -1
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length: %w", err)
			}
			contentLength = n
		}
	}

	if contentLength < 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}
	payload := make([]byte, contentLength)
	if _, err := io.ReadFull(s.reader, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *lspServer) writePayload(msg lspOutboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.writer, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return err
	}
	if _, err := s.writer.Write(data); err != nil {
		return err
	}
	return s.writer.Flush()
}
