package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"glacierprune/config"
)

// Integration tests for the vault-info command
// These tests require real Glacier access and are skipped by default.
// To run these tests, set the environment variable GLACIER_INTEGRATION_TEST=true

func TestVaultInfoCommand(t *testing.T) {
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

	rootCmd.SetArgs([]string{"vault-info"})
	err := rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if err != nil {
		t.Fatalf("Vault info command failed: %v", err)
	}

	if !strings.Contains(output, os.Getenv("TEST_VAULT_NAME")) {
		t.Errorf("Output doesn't contain vault name: %s", output)
	}

	if !strings.Contains(output, "vault_arn") {
		t.Errorf("Output doesn't contain vault ARN field: %s", output)
	}
}
