package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"concerto/internal/lsp"
)

const lsName = "concerto"

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	// Debug-level logging through commonlog (nil = default backend)
	commonlog.Configure(1, nil)

	concertoHandler := lsp.NewConcertoHandler()

	handler = protocol.Handler{
		Initialize:            concertoHandler.Initialize,
		Initialized:           concertoHandler.Initialized,
		Shutdown:              concertoHandler.Shutdown,
		SetTrace:              concertoHandler.SetTrace,
		TextDocumentDidOpen:   concertoHandler.TextDocumentDidOpen,
		TextDocumentDidChange: concertoHandler.TextDocumentDidChange,
		TextDocumentDidClose:  concertoHandler.TextDocumentDidClose,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting Concerto LSP server %s...", version)

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting Concerto LSP server:", err)
		os.Exit(1)
	}
}
