package lsp

import (
	"log"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"concerto/internal/ast"
	"concerto/internal/parser"
)

// ConcertoHandler implements the LSP server handlers for Concerto model files.
// Documents are kept in memory and reparsed on every change; diagnostics are
// published after each reparse.
type ConcertoHandler struct {
	mu      sync.RWMutex
	content map[string]string
	models  map[string]*ast.Model
}

func NewConcertoHandler() *ConcertoHandler {
	return &ConcertoHandler{
		content: make(map[string]string),
		models:  make(map[string]*ast.Model),
	}
}

// Initialize responds to the LSP client's initialize request and advertises
// the server's capabilities.
func (h *ConcertoHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

func (h *ConcertoHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Concerto LSP initialized")
	return nil
}

func (h *ConcertoHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Concerto LSP shutdown")
	return nil
}

func (h *ConcertoHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *ConcertoHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics := h.updateModel(params.TextDocument.URI, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// The server requests full-document sync, so each change carries the whole
// new text.
func (h *ConcertoHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	text, ok := h.latestText(params)
	if !ok {
		return nil
	}

	diagnostics := h.updateModel(params.TextDocument.URI, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *ConcertoHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	delete(h.models, params.TextDocument.URI)
	return nil
}

// Model returns the last successfully parsed model for a URI, if any.
func (h *ConcertoHandler) Model(uri string) (*ast.Model, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	model, ok := h.models[uri]
	return model, ok
}

func (h *ConcertoHandler) latestText(params *protocol.DidChangeTextDocumentParams) (string, bool) {
	text := ""
	found := false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
			found = true
		case protocol.TextDocumentContentChangeEvent:
			text = c.Text
			found = true
		}
	}
	return text, found
}

// updateModel reparses the document and returns the diagnostics to publish.
// The result is never nil: an empty slice clears stale diagnostics on the
// client.
func (h *ConcertoHandler) updateModel(uri string, text string) []protocol.Diagnostic {
	model, parseErrors, scanErrors := parser.ParseSource(uri, text)

	h.mu.Lock()
	h.content[uri] = text
	if model != nil {
		h.models[uri] = model
	} else {
		delete(h.models, uri)
	}
	h.mu.Unlock()

	diagnostics := append(ConvertScanErrors(scanErrors), ConvertParseErrors(parseErrors)...)
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	return diagnostics
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
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
