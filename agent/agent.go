// Package agent wraps the architect ChatMode behind a loosely structured
// request surface: free-text or key=value input merged over an explicit
// context, with results and errors folded into a success/failure envelope.
package agent

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anchildress1/orka-reasoning/chatmode"
)

// Parameter names required after merging context and parsed input.
const (
	ParamPrompt       = "prompt"
	ParamTargets      = "targets"
	ParamArtifactType = "artifactType"
	ParamDepth        = "depth"
	ParamUserName     = "user_name"
)

// Context carries the explicit request parameters supplied alongside the
// free-text input. Context values are applied first; key=value lines parsed
// from the input override matching keys. That order is load-bearing — do not
// flip it.
type Context struct {
	Prompt       string
	Targets      string
	ArtifactType string
	Depth        string
	UserName     string
	Constraints  map[string]string
}

// Metadata describes the agent and request that produced a response.
type Metadata struct {
	AgentID      string `json:"agent_id"`
	ArtifactType string `json:"artifact_type,omitempty"`
	Targets      string `json:"targets,omitempty"`
	Depth        string `json:"depth,omitempty"`
}

// Response is the envelope returned for every request. Errors never
// propagate past the agent boundary; failures set Success false and Error.
type Response struct {
	ResponseID string           `json:"response_id"`
	Success    bool             `json:"success"`
	Result     *chatmode.Result `json:"result,omitempty"`
	Error      string           `json:"error,omitempty"`
	Metadata   Metadata         `json:"metadata"`
	Timestamp  time.Time        `json:"timestamp"`
}

// Agent generates architectural documentation and diagrams through the
// architect ChatMode.
type Agent struct {
	id        string
	architect *chatmode.Architect
	logger    *slog.Logger
}

// New creates an agent rooted at the given workspace. Options are forwarded
// to the underlying architect.
func New(id, workspace string, opts ...chatmode.Option) *Agent {
	return &Agent{
		id:        id,
		architect: chatmode.NewArchitect(workspace, opts...),
		logger:    slog.Default().With("agent_id", id),
	}
}

// Architect returns the underlying ChatMode dispatcher.
func (a *Agent) Architect() *chatmode.Architect {
	return a.architect
}

// Process merges the input and context into request parameters, validates
// the required ones, and runs the architect. All failures are reported
// through the envelope.
func (a *Agent) Process(ctx context.Context, input string, reqCtx *Context) Response {
	if err := ctx.Err(); err != nil {
		return a.failure(err.Error())
	}

	params := mergeParams(input, reqCtx)

	for _, required := range []string{ParamPrompt, ParamTargets, ParamArtifactType} {
		if params[required] == "" {
			return a.failure("'" + required + "' parameter is required")
		}
	}

	if params[ParamDepth] == "" {
		params[ParamDepth] = string(chatmode.DepthOverview)
	}

	var constraints map[string]string
	if reqCtx != nil {
		constraints = reqCtx.Constraints
	}

	req := chatmode.Request{
		Prompt:      params[ParamPrompt],
		Targets:     params[ParamTargets],
		Artifact:    chatmode.ArtifactType(params[ParamArtifactType]),
		Depth:       chatmode.Depth(params[ParamDepth]),
		Constraints: constraints,
		UserName:    params[ParamUserName],
	}

	result, err := a.architect.Process(req)
	if err != nil {
		a.logger.Error("Artifact generation failed",
			"artifact_type", req.Artifact,
			"targets", req.Targets,
			"error", err)
		return a.failure(err.Error())
	}

	a.logger.Info("Generated artifact",
		"artifact_type", req.Artifact,
		"targets", req.Targets)

	return Response{
		ResponseID: uuid.New().String(),
		Success:    true,
		Result:     result,
		Metadata: Metadata{
			AgentID:      a.id,
			ArtifactType: string(req.Artifact),
			Targets:      req.Targets,
			Depth:        string(req.Depth),
		},
		Timestamp: time.Now(),
	}
}

// failure builds an error envelope.
func (a *Agent) failure(msg string) Response {
	return Response{
		ResponseID: uuid.New().String(),
		Success:    false,
		Error:      msg,
		Metadata:   Metadata{AgentID: a.id},
		Timestamp:  time.Now(),
	}
}

// mergeParams builds the request parameters: explicit context first, then
// key=value lines parsed from the input overriding matching keys. Input
// without any '=' is treated as the prompt when the context set none.
func mergeParams(input string, reqCtx *Context) map[string]string {
	params := make(map[string]string)

	if reqCtx != nil {
		set := func(key, value string) {
			if value != "" {
				params[key] = value
			}
		}
		set(ParamPrompt, reqCtx.Prompt)
		set(ParamTargets, reqCtx.Targets)
		set(ParamArtifactType, reqCtx.ArtifactType)
		set(ParamDepth, reqCtx.Depth)
		set(ParamUserName, reqCtx.UserName)
	}

	if strings.Contains(input, "=") {
		for _, line := range strings.Split(input, "\n") {
			line = strings.TrimSpace(line)
			key, value, found := strings.Cut(line, "=")
			if !found {
				continue
			}
			params[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	} else if params[ParamPrompt] == "" {
		params[ParamPrompt] = input
	}

	return params
}
