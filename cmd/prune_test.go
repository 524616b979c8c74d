package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"glacierprune/config"
)

// Validation tests run without any AWS access: option validation happens
// before a client is created.

func TestPruneRejectsMutuallyExclusiveSources(t *testing.T) {
	cfg = &config.Config{VaultName: "test-vault"}

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs([]string{
		"prune",
		"--load-inventory", "inventory.json",
		"--use-job-id", "job-1",
		"--confirm",
	})
	err := rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if err == nil {
		t.Fatal("Execute() expected error for mutually exclusive flags")
	}

	if !strings.Contains(output, "mutually exclusive") {
		t.Errorf("Output doesn't mention mutual exclusion: %s", output)
	}
}

func TestPruneRequiresVaultName(t *testing.T) {
	cfg = &config.Config{}

	oldStdout := os.Stdout
	_, w, _ := os.Pipe()
	os.Stdout = w
	defer func() {
		w.Close()
		os.Stdout = oldStdout
	}()

	// Explicit empty values reset flags set by earlier tests.
	rootCmd.SetArgs([]string{
		"prune",
		"--dry-run",
		"--load-inventory", "",
		"--use-job-id", "",
	})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Execute() expected error when no vault name is configured")
	}
}

// Integration test; requires real Glacier access and is skipped by default.
// To run it, set GLACIER_INTEGRATION_TEST=true.
func TestPruneDryRunCommand(t *testing.T) {
	if os.Getenv("GLACIER_INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test; set GLACIER_INTEGRATION_TEST=true to run")
	}

	cfg = &config.Config{
		VaultName: os.Getenv("TEST_VAULT_NAME"),
		Region:    os.Getenv("TEST_REGION"),
		AccessKey: os.Getenv("TEST_ACCESS_KEY"),
		SecretKey: os.Getenv("TEST_SECRET_KEY"),
		ApiURL:    os.Getenv("TEST_API_URL"),
	}

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs([]string{
		"prune",
		"--dry-run",
		"--poll-seconds", "5",
		"--load-inventory", "",
		"--use-job-id", "",
	})
	err := rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if err != nil {
		t.Fatalf("Prune command failed: %v", err)
	}

	if !strings.Contains(output, os.Getenv("TEST_VAULT_NAME")) {
		t.Errorf("Output doesn't contain vault name: %s", output)
	}

	if !strings.Contains(output, `"dry_run": true`) {
		t.Errorf("Output doesn't report dry-run mode: %s", output)
	}
}
