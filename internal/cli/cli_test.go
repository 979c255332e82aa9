package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/cleago/internal/app"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		want     *app.Config
		wantRest []string
	}{
		{
			name:     "defaults",
			args:     []string{"-m", "cli.hcl", "add", "1", "2"},
			want:     &app.Config{ManifestPaths: []string{"cli.hcl"}, LogFormat: "text", LogLevel: "warn"},
			wantRest: []string{"add", "1", "2"},
		},
		{
			name: "repeated manifests and options",
			args: []string{"--manifest", "a.hcl", "-m", "dir", "--log-level", "DEBUG", "--log-format=json", "--isolated", "show"},
			want: &app.Config{
				ManifestPaths: []string{"a.hcl", "dir"},
				LogFormat:     "json",
				LogLevel:      "debug",
				Isolated:      true,
			},
			wantRest: []string{"show"},
		},
		{
			name:     "flags after the first argument belong to the program",
			args:     []string{"-m", "cli.hcl", "divide", "--round", "1", "2"},
			want:     &app.Config{ManifestPaths: []string{"cli.hcl"}, LogFormat: "text", LogLevel: "warn"},
			wantRest: []string{"divide", "--round", "1", "2"},
		},
		{
			name:     "double dash forwards help",
			args:     []string{"-m", "cli.hcl", "--", "--help"},
			want:     &app.Config{ManifestPaths: []string{"cli.hcl"}, LogFormat: "text", LogLevel: "warn"},
			wantRest: []string{"--help"},
		},
		{
			name:     "no program arguments",
			args:     []string{"-m", "cli.hcl"},
			want:     &app.Config{ManifestPaths: []string{"cli.hcl"}, LogFormat: "text", LogLevel: "warn"},
			wantRest: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Act ---
			cfg, rest, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			// --- Assert ---
			require.NoError(t, err)
			assert.False(t, shouldExit)
			if diff := cmp.Diff(tc.want, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
			assert.ElementsMatch(t, tc.wantRest, rest)
		})
	}
}

func TestParse_ShouldExit(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "help", args: []string{"--help"}},
		{name: "short help", args: []string{"-h"}},
		{name: "no manifest", args: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			cfg, rest, shouldExit, err := Parse(tc.args, out)

			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, cfg)
			assert.Nil(t, rest)
			assert.Contains(t, out.String(), "Usage:")
			assert.Contains(t, out.String(), "--manifest")
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"--workers", "3"}, wantMsg: "unknown flag: --workers"},
		{name: "bad format", args: []string{"-m", "a.hcl", "--log-format", "xml"}, wantMsg: "invalid log-format"},
		{name: "bad level", args: []string{"-m", "a.hcl", "--log-level", "loud"}, wantMsg: "invalid log-level"},
		{name: "empty manifest", args: []string{"-m", ""}, wantMsg: "manifest paths cannot be empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, shouldExit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
