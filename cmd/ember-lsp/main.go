// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"ember/internal/lsp"
)

const lsName = "ember"

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	commonlog.Configure(1, nil)

	emberHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:                     emberHandler.Initialize,
		Initialized:                    emberHandler.Initialized,
		Shutdown:                       emberHandler.Shutdown,
		SetTrace:                       emberHandler.SetTrace,
		TextDocumentDidOpen:            emberHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           emberHandler.TextDocumentDidClose,
		TextDocumentDidChange:          emberHandler.TextDocumentDidChange,
		TextDocumentCompletion:         emberHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: emberHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting Ember LSP server %s...", version)

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting Ember LSP server:", err)
		os.Exit(1)
	}
}
