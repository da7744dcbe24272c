package lsp

import (
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ember/internal/ast"
	"ember/internal/parser"
)

// SemanticTokenTypes is the legend advertised to clients; a token's wire
// value is its index here.
var SemanticTokenTypes = []string{
	"keyword",
	"type",
	"variable",
	"number",
	"string",
	"operator",
	"comment",
}

var SemanticTokenModifiers = []string{
	"declaration",
}

// Handler implements the LSP endpoints for the Ember language. Documents
// are tracked from the client's own didOpen/didChange payloads, never
// re-read from disk, so unsaved buffers diagnose correctly.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
	modules map[string]*ast.Module
}

func NewHandler() *Handler {
	return &Handler{
		content: make(map[string]string),
		modules: make(map[string]*ast.Module),
	}
}

// Initialize advertises the server's capabilities to the client.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.refresh(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	// Full sync only: the last whole-document change wins.
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			h.refresh(ctx, params.TextDocument.URI, whole.Text)
		}
	}
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, string(params.TextDocument.URI))
	delete(h.modules, string(params.TextDocument.URI))
	return nil
}

// TextDocumentCompletion offers the keyword and builtin type names; there
// is no scope to be smarter about yet.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	keywordKind := protocol.CompletionItemKindKeyword
	typeKind := protocol.CompletionItemKindStruct

	items := []protocol.CompletionItem{
		{Label: "event", Kind: &keywordKind},
	}
	for _, name := range builtinTypes {
		items = append(items, protocol.CompletionItem{Label: name, Kind: &typeKind})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull classifies the scanner's token stream for
// the whole document and encodes it in the LSP delta format.
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	h.mu.RLock()
	content, ok := h.content[string(params.TextDocument.URI)]
	h.mu.RUnlock()
	if !ok {
		return &protocol.SemanticTokens{Data: []protocol.UInteger{}}, nil
	}

	tokens := collectSemanticTokens(content)

	var data []protocol.UInteger
	var prevLine, prevStart uint32
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}
		data = append(data, deltaLine, deltaStart, token.Length, token.TokenType, token.TokenModifiers)
		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{Data: data}, nil
}

func (h *Handler) refresh(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	module, scanErrors, parseErr := parser.ParseSource(text)

	h.mu.Lock()
	h.content[string(uri)] = text
	if module != nil {
		h.modules[string(uri)] = module
	}
	h.mu.Unlock()

	diagnostics := ConvertScanErrors(scanErrors)
	diagnostics = append(diagnostics, ConvertParseFailure(parseErr)...)
	if diagnostics == nil {
		// An empty list clears stale squiggles on the client.
		diagnostics = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
