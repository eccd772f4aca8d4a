package mcptools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewDiaryMCPServer creates an in-memory MCP server exposing diary tools.
// Returns the server and a client transport for connecting to it.
func NewDiaryMCPServer(events Loader, now func() time.Time) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(events, now, "dev")

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the read-only diary tools.
func CreateMCPServer(events Loader, now func() time.Time, version string) *mcp.Server {
	if now == nil {
		now = time.Now
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "diary",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_events",
		Description: "List diary events, including repeat occurrences, within a window of days from now",
	}, ListEventsHandler(events, now))

	return server
}
