// Package mcp exposes the Bayeux engine as an MCP server, so agent hosts can
// run posterior queries and inspect the network as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/bayeux/pkg/domain"
	"github.com/aretw0/bayeux/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PosteriorResponse is the structured result of the query_posterior tool.
type PosteriorResponse struct {
	Query     string             `json:"query" jsonschema_description:"The query variable name"`
	Posterior map[string]float64 `json:"posterior" jsonschema_description:"Posterior probability per outcome"`
}

// VariableInfo describes one network member.
type VariableInfo struct {
	Name    string   `json:"name"`
	Parents []string `json:"parents"`
	Domain  []string `json:"domain"`
}

// NetworkResponse is the structured result of the describe_network tool.
type NetworkResponse struct {
	Variables []VariableInfo `json:"variables" jsonschema_description:"Variables in parent-before-child order"`
}

// Server wraps an Asker and exposes it as an MCP Server.
type Server struct {
	asker     ports.Asker
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(asker ports.Asker, version string) *Server {
	s := &Server{
		asker:     asker,
		mcpServer: server.NewMCPServer("bayeux-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: query_posterior
	queryTool := mcp.NewTool("query_posterior",
		mcp.WithDescription("Compute the posterior distribution of a query variable given evidence."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Name of the query variable")),
		mcp.WithString("evidence", mcp.Description("JSON object of observed values, e.g. {\"wet\": true}")),
		mcp.WithOutputSchema[PosteriorResponse](),
	)
	s.mcpServer.AddTool(queryTool, mcp.NewStructuredToolHandler(s.handleQueryPosterior))

	// TOOL: describe_network
	describeTool := mcp.NewTool("describe_network",
		mcp.WithDescription("List the network's variables, parents and outcome domains."),
		mcp.WithOutputSchema[NetworkResponse](),
	)
	s.mcpServer.AddTool(describeTool, mcp.NewStructuredToolHandler(s.handleDescribeNetwork))
}

// Handler methods for structured tools

func (s *Server) handleQueryPosterior(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PosteriorResponse, error) {
	query, _ := args["query"].(string)
	if query == "" {
		return PosteriorResponse{}, fmt.Errorf("query is required")
	}

	evidence := make(domain.Evidence)
	if evStr, ok := args["evidence"].(string); ok && evStr != "" {
		var raw map[string]domain.Outcome
		if err := json.Unmarshal([]byte(evStr), &raw); err != nil {
			return PosteriorResponse{}, fmt.Errorf("malformed evidence: %w", err)
		}
		for name, value := range raw {
			evidence[name] = value
		}
	}

	posterior, err := s.asker.Ask(ctx, query, evidence)
	if err != nil {
		return PosteriorResponse{}, fmt.Errorf("query failed: %w", err)
	}

	resp := PosteriorResponse{
		Query:     query,
		Posterior: make(map[string]float64, len(posterior)),
	}
	for _, o := range posterior.Outcomes() {
		resp.Posterior[o.String()] = posterior[o]
	}
	return resp, nil
}

func (s *Server) handleDescribeNetwork(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (NetworkResponse, error) {
	return describeNetwork(s.asker.Network()), nil
}

func describeNetwork(net *domain.Network) NetworkResponse {
	resp := NetworkResponse{Variables: make([]VariableInfo, 0, net.Len())}
	for _, v := range net.Variables() {
		outcomes := v.Domain()
		display := make([]string, len(outcomes))
		for i, o := range outcomes {
			display[i] = o.String()
		}
		resp.Variables = append(resp.Variables, VariableInfo{
			Name:    v.Name(),
			Parents: v.ParentNames(),
			Domain:  display,
		})
	}
	return resp
}

func (s *Server) registerResources() {
	// EXPOSE: bayeux://network
	s.mcpServer.AddResource(mcp.NewResource("bayeux://network", "Network Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(describeNetwork(s.asker.Network()))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal network: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "bayeux://network",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
