package cli

import (
	"bytes"
	"context"
	"testing"
)

// cliResult captures one invocation of Run.
type cliResult struct {
	stdout string
	stderr string
	code   int
}

// runCLI runs javadecl with args in an isolated environment: HOME points at
// an empty directory so no user config file is picked up.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()

	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return cliResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
		code:   code,
	}
}
