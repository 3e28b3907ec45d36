package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs c with args in a data directory holding files, and returns
// what it printed on stdout and stderr.
func execute(t *testing.T, c subcommands.Command, files map[string]string, args ...string) (subcommands.ExitStatus, string, string) {
	t.Helper()
	t.Setenv("HS_DATA_DIR", "")
	t.Setenv("HS_CURRENCY", "")

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	*dataDir = dir
	t.Cleanup(func() { *dataDir = "" })

	var out, errOut bytes.Buffer
	stdout, stderr = &out, &errOut
	t.Cleanup(func() { stdout, stderr = os.Stdout, os.Stderr })

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	status := c.Execute(context.Background(), f)
	return status, out.String(), errOut.String()
}

var files = map[string]string{
	"UP.csv": `Date,Low,Close
2024-03-01,90,95
2024-04-01,100,100
2024-05-01,100,105
2024-06-03,108,110
`,
	"DOWN.csv": `Date,Low,Close
2024-03-01,200,210
2024-06-03,140,150
`,
	"LATE.csv": `Date,Low,Close
2024-03-04,10,10
2024-06-03,20,20
`,
}

func TestLumpsum_JSON(t *testing.T) {
	status, out, _ := execute(t, &lumpsumCmd{}, files, "-b", "DOWN,UP,LATE", "-budget", "300", "-json")
	require.Equal(t, subcommands.ExitSuccess, status)

	var report struct {
		Mode   string `json:"mode"`
		Ranked []struct {
			ID string `json:"id"`
		} `json:"ranked"`
		Skipped []struct {
			ID     string `json:"id"`
			Reason string `json:"reason"`
		} `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "lumpsum", report.Mode)
	require.Len(t, report.Ranked, 2)
	assert.Equal(t, "UP", report.Ranked[0].ID)
	assert.Equal(t, "DOWN", report.Ranked[1].ID)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "LATE", report.Skipped[0].ID)
	assert.Equal(t, "purchase date not found", report.Skipped[0].Reason)
}

func TestLumpsum_Markdown(t *testing.T) {
	status, out, _ := execute(t, &lumpsumCmd{}, files, "-b", "UP", "-budget", "100")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "# Lump-Sum Investment Results")
	assert.Contains(t, out, "+$22.22")
}

func TestLumpsum_AllInstruments(t *testing.T) {
	status, out, _ := execute(t, &lumpsumCmd{}, files, "-b", "all", "-q", "$.ranked[*].id")
	require.Equal(t, subcommands.ExitSuccess, status)

	var ids []string
	require.NoError(t, json.Unmarshal([]byte(out), &ids))
	assert.ElementsMatch(t, []string{"UP", "DOWN"}, ids)
}

func TestLumpsum_Query(t *testing.T) {
	status, out, _ := execute(t, &lumpsumCmd{}, files, "-b", "DOWN", "-budget", "100", "-q", "$.ranked[0].profit.amount")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "-25\n", out)
}

func TestLumpsum_Errors(t *testing.T) {
	status, _, errOut := execute(t, &lumpsumCmd{}, files, "-b", "UP", "-budget", "lots")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, errOut, "invalid budget")

	status, _, errOut = execute(t, &lumpsumCmd{}, files, "-b", "UP", "-budget", "0")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "budget must be positive")

	status, _, errOut = execute(t, &lumpsumCmd{}, nil, "-b", "UP")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "No files found in the data directory")
}

func TestDca_Plan(t *testing.T) {
	plan := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(plan, []byte("basket: [UP]\nmonthly_budget: 50\nstart_investment_date: 2024-03-01\n"), 0o644))

	status, out, _ := execute(t, &dcaCmd{}, files, "-plan", plan, "-q", "$.ranked[0].invested.amount")
	require.Equal(t, subcommands.ExitSuccess, status)
	// 03-01, 04-01, 05-01 and 06-01
	assert.Equal(t, "200\n", out)

	// flags take precedence over the plan.
	status, out, _ = execute(t, &dcaCmd{}, files, "-plan", plan, "-budget", "10", "-q", "$.ranked[0].invested.amount")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "40\n", out)
}

func TestDca_Anchor(t *testing.T) {
	status, out, _ := execute(t, &dcaCmd{}, files, "-b", "LATE", "-start", "2024-03-02", "-anchor", "first-trade", "-q", "$.ranked[0].purchases[*].on")
	require.Equal(t, subcommands.ExitSuccess, status)

	var days []string
	require.NoError(t, json.Unmarshal([]byte(out), &days))
	assert.Equal(t, []string{"2024-03-04", "2024-04-04", "2024-05-04"}, days)

	status, _, _ = execute(t, &dcaCmd{}, files, "-b", "LATE", "-anchor", "weekly")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestTopic(t *testing.T) {
	status, out, _ := execute(t, &topicCmd{}, nil, "-l")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "lumpsum")
	assert.Contains(t, out, "dca")

	status, out, _ = execute(t, &topicCmd{}, nil)
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "# hs")

	status, _, _ = execute(t, &topicCmd{}, nil, "nope")
	assert.Equal(t, subcommands.ExitFailure, status)
}

func TestPlan_Errors(t *testing.T) {
	status, out, errOut := execute(t, &lumpsumCmd{}, files, "-plan", filepath.Join(t.TempDir(), "typo.yaml"))
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error loading plan")

	plan := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(plan, []byte("basket: [UP]\nmonthly_budget: 0\n"), 0o644))
	status, _, errOut = execute(t, &dcaCmd{}, files, "-plan", plan)
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "budget must be positive")
}
