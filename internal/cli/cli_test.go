package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navstep/pkg/navstep"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := run(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "navstep")
	assert.Contains(t, out, "plan")
	assert.Contains(t, out, "simulate")
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, err := run(t, "--version")

	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := run(t, "invalid-command")
	assert.Error(t, err)
}

func TestPlanCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "one push per step",
			args: []string{"--from", "A,B,C", "--to", "A,D,E", "--push-multiple=false"},
			want: []string{
				"[A B C] -> [A D E] (push multiple: false, common prefix: 1)",
				"  1. pop  [A]",
				"  2. push [A D]",
				"  3. push [A D E]",
			},
		},
		{
			name: "multi push",
			args: []string{"--from", "A,B", "--to", "A,B,C,D", "--push-multiple"},
			want: []string{
				"[A B] -> [A B C D] (push multiple: true, common prefix: 2)",
				"  1. push [A B C D]",
			},
		},
		{
			name: "pure pop",
			args: []string{"--from", "A,B,C", "--to", "A,B", "--push-multiple=false"},
			want: []string{
				"[A B C] -> [A B] (push multiple: false, common prefix: 2)",
				"  1. pop  [A B]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"plan"}, tt.args...)...)

			require.NoError(t, err)
			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", out)
		})
	}
}

func TestPlanCommand_UsesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navstep.toml")
	require.NoError(t, os.WriteFile(path, []byte("push_multiple = false\n"), 0644))

	out, err := run(t, "--config", path, "plan", "--from", "A", "--to", "A,B,C")

	require.NoError(t, err)
	assert.Contains(t, out, "push multiple: false")
	assert.Contains(t, out, "  2. push [A B C]")
}

func TestPlanCommand_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navstep.toml")
	require.NoError(t, os.WriteFile(path, []byte("nope = 1\n"), 0644))

	_, err := run(t, "--config", path, "plan", "--from", "A", "--to", "B")
	assert.Error(t, err)
}

func TestSimulateCommand(t *testing.T) {
	out, err := run(t, "simulate", "--from", "A", "--to", "A,B,C", "--delay", "1ms", "--push-multiple=false")

	require.NoError(t, err)
	assert.Contains(t, out, "  1. push [A B]")
	assert.Contains(t, out, "  2. push [A B C]")
	assert.Contains(t, out, "final [A B C] after 2 writes")
}

func TestSimulateCommand_Supersession(t *testing.T) {
	out, err := run(t, "simulate",
		"--from", "A",
		"--to", "A,B,C,D",
		"--then", "A,X",
		"--then-after", "0s",
		"--delay", "50ms",
		"--push-multiple=false")

	require.NoError(t, err)
	assert.Contains(t, out, "navigate [A X]")
	assert.Contains(t, out, "final [A X]")
	assert.NotContains(t, out, "[A B C D]")
}

func TestSimulateCommand_NegativeDelay(t *testing.T) {
	_, err := run(t, "simulate", "--from", "A", "--to", "A,B", "--delay", "-1s")
	assert.Error(t, err)
}

func TestPlanCommand_ConfigLogLevel(t *testing.T) {
	defer navstep.SetLogLevel(slog.LevelInfo)

	path := filepath.Join(t.TempDir(), "navstep.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"debug\"\n"), 0644))

	_, err := run(t, "--config", path, "plan", "--from", "A", "--to", "A,B")
	require.NoError(t, err)
	assert.True(t, navstep.GetLogger().Enabled(context.Background(), slog.LevelDebug))

	_, err = run(t, "--config", path, "--log-level", "warn", "plan", "--from", "A", "--to", "A,B")
	require.NoError(t, err)
	assert.False(t, navstep.GetLogger().Enabled(context.Background(), slog.LevelInfo), "--log-level wins over the config file")
}
