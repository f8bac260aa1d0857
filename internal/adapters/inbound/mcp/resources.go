package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all EarCraft MCP resources on the given server.
func registerResources(s *server.MCPServer, d *deps) {
	// 1. earcraft://catalog - the pack's challenge catalog
	s.AddResource(
		mcplib.NewResource(
			"earcraft://catalog",
			"Challenge Catalog",
			mcplib.WithResourceDescription("The loaded challenge pack's full catalog"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(d),
	)

	// 2. earcraft://skills - the learner's skill profile
	s.AddResource(
		mcplib.NewResource(
			"earcraft://skills",
			"Skill Profile",
			mcplib.WithResourceDescription("Aggregated skill scores, weakest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSkillsResource(d),
	)
}

func handleCatalogResource(d *deps) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cat, err := d.catalog.Load(d.packDir)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}

		data, err := json.MarshalIndent(cat, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling catalog: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "earcraft://catalog",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleSkillsResource(d *deps) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		overview, err := d.dashboard.Overview(d.packDir)
		if err != nil {
			return nil, fmt.Errorf("building overview: %w", err)
		}

		data, err := json.MarshalIndent(overview.Skills, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling skills: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "earcraft://skills",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
