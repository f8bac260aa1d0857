package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/earcraft/earcraft/internal/application"
	"github.com/earcraft/earcraft/internal/domain"
)

// registerTools registers all EarCraft MCP tools on the given server.
func registerTools(s *server.MCPServer, d *deps) {
	// 1. earcraft_grade
	s.AddTool(
		mcplib.NewTool("earcraft_grade",
			mcplib.WithDescription("Grade a sound-design submission against a challenge's reference sound. Returns the score, per-category breakdown and merged progress as JSON."),
			mcplib.WithString("challenge_id",
				mcplib.Required(),
				mcplib.Description("Challenge id from the pack catalog"),
			),
			mcplib.WithString("audio",
				mcplib.Required(),
				mcplib.Description("Path to the rendered submission WAV file"),
			),
			mcplib.WithString("params",
				mcplib.Required(),
				mcplib.Description(`Submission parameters as JSON with one variant key, e.g. {"subtractive":{"oscillator":{...},"filter":{...},"envelope":{...}}}`),
			),
		),
		handleGrade(d),
	)

	// 2. earcraft_evaluate_mix
	s.AddTool(
		mcplib.NewTool("earcraft_evaluate_mix",
			mcplib.WithDescription("Evaluate a mixer layer snapshot against a mix challenge. Returns per-layer or per-condition results as JSON."),
			mcplib.WithString("challenge_id",
				mcplib.Required(),
				mcplib.Description("Challenge id from the pack catalog"),
			),
			mcplib.WithString("layers",
				mcplib.Required(),
				mcplib.Description(`Layer states as a JSON array, e.g. [{"id":"kick","volume":-3,"pan":0,"muted":false}]`),
			),
		),
		handleEvaluateMix(d),
	)

	// 3. earcraft_skills
	s.AddTool(
		mcplib.NewTool("earcraft_skills",
			mcplib.WithDescription("Returns the learner's skill profile, weakest skills first, with detected weaknesses"),
		),
		handleSkills(d),
	)

	// 4. earcraft_recommendations
	s.AddTool(
		mcplib.NewTool("earcraft_recommendations",
			mcplib.WithDescription("Returns recommended challenges to practice, ordered by priority"),
		),
		handleRecommendations(d),
	)

	// 5. earcraft_progress
	s.AddTool(
		mcplib.NewTool("earcraft_progress",
			mcplib.WithDescription("Returns stored per-challenge progress records"),
			mcplib.WithString("challenge_id",
				mcplib.Description("Limit output to a single challenge"),
			),
		),
		handleProgress(d),
	)
}

func handleGrade(d *deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		challengeID, err := request.RequireString("challenge_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		audio, err := request.RequireString("audio")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		rawParams, err := request.RequireString("params")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		params, err := decodeParams(rawParams)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		outcome, err := d.grade.Grade(application.GradeInput{
			PackDir:      d.packDir,
			ChallengeID:  challengeID,
			PlayerAudio:  audio,
			PlayerParams: params,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("grading failed: %v", err)), nil
		}
		return jsonResult(outcome)
	}
}

func handleEvaluateMix(d *deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		challengeID, err := request.RequireString("challenge_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		rawLayers, err := request.RequireString("layers")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var layers []domain.LayerState
		if err := json.Unmarshal([]byte(rawLayers), &layers); err != nil {
			return errorResult(fmt.Sprintf("parsing layers: %v", err)), nil
		}

		outcome, err := d.mix.Evaluate(d.packDir, challengeID, layers)
		if err != nil {
			return errorResult(fmt.Sprintf("evaluation failed: %v", err)), nil
		}
		return jsonResult(outcome)
	}
}

func handleSkills(d *deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		overview, err := d.dashboard.Overview(d.packDir)
		if err != nil {
			return errorResult(fmt.Sprintf("building overview: %v", err)), nil
		}
		return jsonResult(map[string]any{
			"skills":     overview.Skills,
			"weaknesses": overview.Weaknesses,
		})
	}
}

func handleRecommendations(d *deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		overview, err := d.dashboard.Overview(d.packDir)
		if err != nil {
			return errorResult(fmt.Sprintf("building overview: %v", err)), nil
		}
		return jsonResult(overview.Recommendations)
	}
}

func handleProgress(d *deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		challengeID, _ := request.GetArguments()["challenge_id"].(string)
		if challengeID != "" {
			record, err := d.store.Get(challengeID)
			if err != nil {
				return errorResult(fmt.Sprintf("loading progress: %v", err)), nil
			}
			if record == nil {
				return errorResult(fmt.Sprintf("no progress for %q", challengeID)), nil
			}
			return jsonResult(record)
		}

		all, err := d.store.All()
		if err != nil {
			return errorResult(fmt.Sprintf("loading progress: %v", err)), nil
		}
		return jsonResult(all)
	}
}

// decodeParams accepts the same variant shape as a submission YAML file,
// JSON-encoded.
func decodeParams(raw string) (domain.SynthParams, error) {
	var sub struct {
		Subtractive *domain.SynthParams    `json:"subtractive"`
		FM          *domain.FMParams       `json:"fm"`
		Additive    *domain.AdditiveParams `json:"additive"`
	}
	if err := json.Unmarshal([]byte(raw), &sub); err != nil {
		return domain.SynthParams{}, fmt.Errorf("parsing params: %w", err)
	}
	switch {
	case sub.Subtractive != nil:
		return sub.Subtractive.Comparable(), nil
	case sub.FM != nil:
		return sub.FM.Comparable(), nil
	case sub.Additive != nil:
		return sub.Additive.Comparable(), nil
	default:
		return domain.SynthParams{}, fmt.Errorf("params: no parameter variant set")
	}
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool error result (not a protocol error).
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
