package cli

import (
	mcpAdapter "github.com/aretw0/arbor/pkg/adapters/mcp"
)

// ServeMCP speaks the Model Context Protocol on stdin/stdout until stdin closes
// or the process is signalled. Logs go to o.Stderr so they never mix with JSON-RPC.
func ServeMCP(o Options) error {
	s := mcpAdapter.NewServer(mcpAdapter.WithLogger(createLogger(o)))
	return s.ServeStdio()
}
