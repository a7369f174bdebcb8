package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestCLIWorkflowEndToEnd(t *testing.T) {
	dir := t.TempDir()

	out := executeCommand(t, newRoot(t), "init", "--dir", dir, "--title", "Practice", "--sparse", "--nb", "--nb-name", "Tags")
	assertContains(t, out, "Initialized workspace at")

	out = executeCommand(t, newRoot(t), "add", "--dir", dir, "--no-input",
		"--title", "Two Sum",
		"--url", "https://example.com/two-sum",
		"--site", "LeetCode",
		"--difficulty", "Easy",
		"--problem", "Find two numbers adding to target.",
		"--submitted", "def two_sum(): ...",
		"--nb", "hash map",
	)
	assertContains(t, out, "Added 001_01")

	out = executeCommand(t, newRoot(t), "add", "--dir", dir, "--no-input",
		"--title", "Add Digits",
		"--url", "https://example.com/add-digits",
		"--site", "LeetCode",
		"--difficulty", "Easy",
	)
	assertContains(t, out, "Added 001_02")

	out = executeCommand(t, newRoot(t), "list", "--dir", dir)
	assertContains(t, out, "Two Sum")
	assertContains(t, out, "Add Digits")
	assertNotContains(t, out, "](") // links are unwrapped

	out = executeCommand(t, newRoot(t), "status", "--dir", dir)
	assertContains(t, out, "Title:     Practice")
	assertContains(t, out, "Entries:   2")
	assertContains(t, out, "Next:      001_03")

	out = executeCommand(t, newRoot(t), "show", "--dir", dir, "--plain")
	assertContains(t, out, "| Day")
	assertContains(t, out, "| Tags")
	assertContains(t, out, "[Two Sum](https://example.com/two-sum)")
}

func TestInitRefusesSecondRun(t *testing.T) {
	dir := t.TempDir()

	executeCommand(t, newRoot(t), "init", "--dir", dir)

	err := executeCommandErr(t, newRoot(t), "init", "--dir", dir)
	if err == nil {
		t.Fatal("expected error on repeated init")
	}
	assertContains(t, err.Error(), "already initialized")
}

func TestInitRejectsUnknownNotation(t *testing.T) {
	dir := t.TempDir()

	err := executeCommandErr(t, newRoot(t), "init", "--dir", dir, "--notation", "roman")
	if err == nil {
		t.Fatal("expected error for unknown notation")
	}
	assertContains(t, err.Error(), "notation")
}

func TestAddRequiresWorkspace(t *testing.T) {
	dir := t.TempDir()

	err := executeCommandErr(t, newRoot(t), "add", "--dir", dir, "--no-input", "--title", "Two Sum")
	if err == nil {
		t.Fatal("expected error without a workspace")
	}
	assertContains(t, err.Error(), "harian init")
}

func TestAddRejectsIncompleteInput(t *testing.T) {
	dir := t.TempDir()

	executeCommand(t, newRoot(t), "init", "--dir", dir)

	err := executeCommandErr(t, newRoot(t), "add", "--dir", dir, "--no-input", "--title", "Two Sum")
	if err == nil {
		t.Fatal("expected validation error")
	}
	assertContains(t, err.Error(), "missing required fields")
}

func TestListEmptyWorkspace(t *testing.T) {
	dir := t.TempDir()

	executeCommand(t, newRoot(t), "init", "--dir", dir)

	out := executeCommand(t, newRoot(t), "list", "--dir", dir)
	assertContains(t, out, "No entries yet.")
}

func newRoot(t *testing.T) *cobra.Command {
	t.Helper()
	return NewRootCommand(context.Background())
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()

	out, err := runCommand(cmd, args)
	if err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out
}

func executeCommandErr(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()

	_, err := runCommand(cmd, args)
	return err
}

func runCommand(cmd *cobra.Command, args []string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output does not contain %q:\n%s", want, output)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output should not contain %q:\n%s", want, output)
	}
}
