package agent

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_Success(t *testing.T) {
	tempDir := t.TempDir()
	a := New("test-agent", tempDir)

	resp := a.Process(context.Background(), "Test input", &Context{
		Prompt:       "Document the authentication system",
		Targets:      "AuthService",
		ArtifactType: "doc",
		Depth:        "overview",
		UserName:     "TestUser",
	})

	require.True(t, resp.Success, "unexpected failure: %s", resp.Error)
	require.NotNil(t, resp.Result)
	assert.NotEmpty(t, resp.ResponseID)
	assert.Equal(t, "test-agent", resp.Metadata.AgentID)
	assert.Equal(t, "doc", resp.Metadata.ArtifactType)
	assert.Equal(t, "AuthService", resp.Metadata.Targets)

	require.True(t, strings.HasSuffix(resp.Result.Document, ".md"))
	_, err := os.Stat(resp.Result.Document)
	require.NoError(t, err, "document must exist on disk")
}

func TestProcess_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		reqCtx  *Context
		missing string
	}{
		{
			name:    "missing prompt",
			reqCtx:  &Context{Targets: "AuthService", ArtifactType: "doc"},
			missing: "prompt",
		},
		{
			name:    "missing targets",
			reqCtx:  &Context{Prompt: "Document auth", ArtifactType: "doc"},
			missing: "targets",
		},
		{
			name:    "missing artifactType",
			reqCtx:  &Context{Prompt: "Document auth", Targets: "AuthService"},
			missing: "artifactType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New("test-agent", t.TempDir())

			// Empty input so nothing fills in for the missing context field.
			// A missing prompt is special: bare input would become the prompt.
			input := ""
			if tt.missing == "prompt" {
				input = "key=value"
			}

			resp := a.Process(context.Background(), input, tt.reqCtx)

			assert.False(t, resp.Success)
			assert.Contains(t, resp.Error, "'"+tt.missing+"' parameter is required")
			assert.Nil(t, resp.Result)
		})
	}
}

func TestProcess_InputAsPrompt(t *testing.T) {
	tempDir := t.TempDir()
	a := New("test-agent", tempDir)

	// Free-text input without '=' becomes the prompt when context sets none.
	resp := a.Process(context.Background(), "Document the billing flow", &Context{
		Targets:      "BillingService",
		ArtifactType: "gapscan",
	})

	require.True(t, resp.Success, "unexpected failure: %s", resp.Error)
	assert.Contains(t, resp.Result.Content, "Document the billing flow")
}

func TestProcess_KeyValueOverridesContext(t *testing.T) {
	tempDir := t.TempDir()
	a := New("test-agent", tempDir)

	// Context is applied first; key=value lines in the input win.
	input := "targets=PaymentService\ndepth=subsystem"
	resp := a.Process(context.Background(), input, &Context{
		Prompt:       "Document payments",
		Targets:      "BillingService",
		ArtifactType: "testcases",
		Depth:        "overview",
	})

	require.True(t, resp.Success, "unexpected failure: %s", resp.Error)
	assert.Equal(t, "PaymentService", resp.Metadata.Targets)
	assert.Equal(t, "subsystem", resp.Metadata.Depth)
	assert.Contains(t, resp.Result.Content, "PaymentService")
}

func TestProcess_DispatcherErrorInEnvelope(t *testing.T) {
	tempDir := t.TempDir()
	a := New("test-agent", tempDir)

	resp := a.Process(context.Background(), "Test input", &Context{
		Prompt:       "Document auth",
		Targets:      "AuthService",
		ArtifactType: "bogus",
	})

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "bogus")
	assert.Equal(t, "test-agent", resp.Metadata.AgentID)
}

func TestProcess_CancelledContext(t *testing.T) {
	a := New("test-agent", t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := a.Process(ctx, "Test input", &Context{
		Prompt:       "Document auth",
		Targets:      "AuthService",
		ArtifactType: "doc",
	})

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "context canceled")
}

func TestMergeParams(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		reqCtx   *Context
		expected map[string]string
	}{
		{
			name:     "bare input becomes prompt",
			input:    "Document the system",
			reqCtx:   nil,
			expected: map[string]string{"prompt": "Document the system"},
		},
		{
			name:   "context prompt is not replaced by bare input",
			input:  "Some other text",
			reqCtx: &Context{Prompt: "Original prompt"},
			expected: map[string]string{
				"prompt": "Original prompt",
			},
		},
		{
			name:   "key=value lines parsed and trimmed",
			input:  "prompt=Document auth\n targets = AuthService ",
			reqCtx: nil,
			expected: map[string]string{
				"prompt":  "Document auth",
				"targets": "AuthService",
			},
		},
		{
			name:   "key=value overrides context",
			input:  "targets=PaymentService",
			reqCtx: &Context{Prompt: "Document payments", Targets: "BillingService"},
			expected: map[string]string{
				"prompt":  "Document payments",
				"targets": "PaymentService",
			},
		},
		{
			name:   "value may contain equals sign",
			input:  "prompt=depth=high detail",
			reqCtx: nil,
			expected: map[string]string{
				"prompt": "depth=high detail",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := mergeParams(tt.input, tt.reqCtx)
			assert.Equal(t, tt.expected, params)
		})
	}
}
