package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

// ExecuteCommand runs cmd with args under ctx and returns what it wrote to
// its out and err streams.
func ExecuteCommand(t *testing.T, ctx context.Context, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	SetupCobraCommand(cmd, args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

// JSONOutput is the envelope the cli commands write with --json.
type JSONOutput struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ParseJSON decodes --json output and, when data is non-nil, its payload.
func ParseJSON(t *testing.T, output string, data any) JSONOutput {
	t.Helper()

	var result JSONOutput
	if err := sonic.UnmarshalString(output, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	if data != nil {
		if err := sonic.Unmarshal(result.Data, data); err != nil {
			t.Fatalf("Failed to parse JSON data: %v\nOutput: %s", err, output)
		}
	}
	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
