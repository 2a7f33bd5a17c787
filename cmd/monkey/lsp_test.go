package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/mgomes/monkey/monkey"
)

func newTestLSPServer(docs map[string]string) *lspServer {
	if docs == nil {
		docs = make(map[string]string)
	}
	return &lspServer{
		engine: monkey.MustNewEngine(monkey.Config{}),
		docs:   docs,
	}
}

func TestRunCLIStartsLSPAndExitsOnEOF(t *testing.T) {
	origStdin := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close write pipe: %v", err)
	}
	os.Stdin = r
	defer func() {
		os.Stdin = origStdin
		_ = r.Close()
	}()

	if err := runCLI([]string{"monkey", "lsp"}); err != nil {
		t.Fatalf("runCLI lsp failed: %v", err)
	}
}

func TestServeRoundTrip(t *testing.T) {
	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`
	input := fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
	exit := `{"jsonrpc":"2.0","method":"exit"}`
	input += fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(exit), exit)

	var out bytes.Buffer
	server := newTestLSPServer(nil)
	server.reader = bufio.NewReader(strings.NewReader(input))
	server.writer = bufio.NewWriter(&out)

	if err := server.serve(); err != nil {
		t.Fatalf("serve: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Content-Length: ") {
		t.Fatalf("missing header: %q", out.String())
	}
	if !strings.Contains(out.String(), `"completionProvider"`) {
		t.Fatalf("missing capabilities: %q", out.String())
	}
}

func TestDiagnosticsForSourceWithoutErrors(t *testing.T) {
	engine := monkey.MustNewEngine(monkey.Config{})
	diags := diagnosticsForSource(engine, "let x = 1;\nx + 1\n")
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestDiagnosticsForSourceWithParseError(t *testing.T) {
	engine := monkey.MustNewEngine(monkey.Config{})
	diags := diagnosticsForSource(engine, "let x = 1;\nlet = 2;\n")
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %v", len(diags), diags)
	}
	first := diags[0]
	if first["severity"] != severityError {
		t.Fatalf("expected severity 1, got %#v", first["severity"])
	}
	if first["message"] != "expected next token to be IDENT, got = instead" {
		t.Fatalf("unexpected message: %#v", first["message"])
	}
	start := first["range"].(map[string]any)["start"].(map[string]any)
	if start["line"] != 1 || start["character"] != 4 {
		t.Fatalf("unexpected start: %#v", start)
	}
}

func TestDiagnosticsIncludeLintWarnings(t *testing.T) {
	engine := monkey.MustNewEngine(monkey.Config{})
	diags := diagnosticsForSource(engine, "let f = fn(a) { a };\nf(1, 2)")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if diags[0]["severity"] != severityWarning || diags[0]["message"] != "call to f with 2 argument(s), want 1" {
		t.Fatalf("unexpected diagnostic: %#v", diags[0])
	}
}

func TestDiagnosticsUseUTF16Columns(t *testing.T) {
	engine := monkey.MustNewEngine(monkey.Config{})
	tests := []struct {
		name      string
		source    string
		line      int
		character int
	}{
		{name: "parse error after CJK string", source: "let s = \"日本語\"; let = 1;", line: 0, character: 19},
		{name: "lint warning after astral rune", source: "let f = fn(a) { a };\nlet s = \"😀\"; f(1, 2)", line: 1, character: 14},
	}
	for _, tt := range tests {
		diags := diagnosticsForSource(engine, tt.source)
		if len(diags) == 0 {
			t.Fatalf("%s: expected diagnostics", tt.name)
		}
		start := diags[0]["range"].(map[string]any)["start"].(map[string]any)
		if start["line"] != tt.line || start["character"] != tt.character {
			t.Fatalf("%s: unexpected start %#v", tt.name, start)
		}
	}
}

func TestUTF16ColumnForByte(t *testing.T) {
	lines := []string{"aé😀b"}
	tests := []struct {
		column int
		want   int
	}{
		{column: 1, want: 0},
		{column: 2, want: 1},
		{column: 4, want: 2},
		{column: 8, want: 4},
		{column: 10, want: 6},
	}
	for _, tt := range tests {
		if got := utf16ColumnForByte(lines, 0, tt.column); got != tt.want {
			t.Fatalf("column %d: got %d, want %d", tt.column, got, tt.want)
		}
	}
	if got := utf16ColumnForByte(lines, 3, 5); got != 4 {
		t.Fatalf("line past end: got %d, want 4", got)
	}
}

func TestCompletionItemsAreSortedAndCategorized(t *testing.T) {
	engine := monkey.MustNewEngine(monkey.Config{})
	items := completionItems(engine, "let total = 1;\nlet = ;")
	if len(items) == 0 {
		t.Fatalf("expected completion items")
	}

	labels := make([]string, 0, len(items))
	for _, item := range items {
		label, ok := item["label"].(string)
		if !ok {
			t.Fatalf("unexpected completion label: %#v", item["label"])
		}
		labels = append(labels, label)
	}
	if !slices.IsSorted(labels) {
		t.Fatalf("expected sorted completion labels, got %v", labels)
	}

	keyword := findCompletionItem(t, items, "if")
	if keyword["detail"] != "keyword" || keyword["kind"] != completionKindKeyword {
		t.Fatalf("unexpected keyword item: %#v", keyword)
	}
	builtin := findCompletionItem(t, items, "push")
	if builtin["detail"] != "builtin" || builtin["kind"] != completionKindFunction {
		t.Fatalf("unexpected builtin item: %#v", builtin)
	}
	binding := findCompletionItem(t, items, "total")
	if binding["detail"] != "binding" || binding["kind"] != completionKindVariable {
		t.Fatalf("unexpected binding item: %#v", binding)
	}
}

func TestHandleMessageDidOpenPublishesDiagnostics(t *testing.T) {
	server := newTestLSPServer(nil)
	payload, err := json.Marshal(map[string]any{
		"textDocument": map[string]any{
			"uri":  "file:///tmp/test.monkey",
			"text": "let x 1;",
		},
	})
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}

	messages := server.handleMessage(lspInboundMessage{
		JSONRPC: "2.0",
		Method:  "textDocument/didOpen",
		Params:  payload,
	})
	if len(messages) != 1 {
		t.Fatalf("expected one publishDiagnostics notification, got %d", len(messages))
	}
	if messages[0].Method != "textDocument/publishDiagnostics" {
		t.Fatalf("unexpected method: %q", messages[0].Method)
	}
	paramsMap, ok := messages[0].Params.(map[string]any)
	if !ok {
		t.Fatalf("unexpected params payload: %#v", messages[0].Params)
	}
	diags, ok := paramsMap["diagnostics"].([]map[string]any)
	if !ok || len(diags) == 0 {
		t.Fatalf("expected diagnostics for invalid source, got %#v", paramsMap["diagnostics"])
	}
	if server.docs["file:///tmp/test.monkey"] != "let x 1;" {
		t.Fatalf("document not stored")
	}
}

func TestHandleMessageHoverClassifiesBuiltins(t *testing.T) {
	server := newTestLSPServer(map[string]string{
		"file:///tmp/test.monkey": "let a = [1];\nlen(a)\n",
	})
	payload, err := json.Marshal(map[string]any{
		"textDocument": map[string]any{"uri": "file:///tmp/test.monkey"},
		"position":     map[string]any{"line": 1, "character": 1},
	})
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}

	messages := server.handleMessage(lspInboundMessage{
		JSONRPC: "2.0",
		ID:      rawID("1"),
		Method:  "textDocument/hover",
		Params:  payload,
	})
	if len(messages) != 1 {
		t.Fatalf("expected one response, got %d", len(messages))
	}
	result, ok := messages[0].Result.(map[string]any)
	if !ok {
		t.Fatalf("unexpected hover result: %#v", messages[0].Result)
	}
	value := result["contents"].(map[string]any)["value"].(string)
	if value != "`len`\n\nMonkey builtin" {
		t.Fatalf("unexpected hover value: %q", value)
	}
}

func TestHandleMessageUnknownMethod(t *testing.T) {
	server := newTestLSPServer(nil)
	messages := server.handleMessage(lspInboundMessage{JSONRPC: "2.0", ID: rawID("7"), Method: "workspace/symbol"})
	if len(messages) != 1 || messages[0].Error == nil || messages[0].Error.Code != -32601 {
		t.Fatalf("unexpected response: %#v", messages)
	}
}

func TestClassifyWord(t *testing.T) {
	engine := monkey.MustNewEngine(monkey.Config{})
	tests := map[string]string{"fn": "keyword", "rest": "builtin", "foo": "symbol"}
	for word, want := range tests {
		if got := classifyWord(engine, word); got != want {
			t.Fatalf("%s: got %s, want %s", word, got, want)
		}
	}
}

func TestWordAtPosition(t *testing.T) {
	source := "let x = 1;\n  first(arr)\n"
	if word := wordAtPosition(source, 1, 4); word != "first" {
		t.Fatalf("expected first, got %q", word)
	}
	if word := wordAtPosition(source, 1, 7); word != "first" {
		t.Fatalf("expected first at word end, got %q", word)
	}
	if word := wordAtPosition(source, 5, 0); word != "" {
		t.Fatalf("expected no word past the end, got %q", word)
	}
}

func TestWordAtPositionUsesUTF16CharacterOffsets(t *testing.T) {
	source := "😀😀x y\n"
	word := wordAtPosition(source, 0, 4)
	if word != "x" {
		t.Fatalf("expected x, got %q", word)
	}
}

func rawID(value string) *json.RawMessage {
	raw := json.RawMessage(value)
	return &raw
}

func findCompletionItem(t *testing.T, items []map[string]any, label string) map[string]any {
	t.Helper()
	for _, item := range items {
		itemLabel, ok := item["label"].(string)
		if ok && itemLabel == label {
			return item
		}
	}
	t.Fatalf("missing completion item %q", label)
	return nil
}
