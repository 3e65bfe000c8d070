package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildEqualityBinary builds the equality binary in the specified directory and returns its path.
func buildEqualityBinary(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "equality.exe")
	// Assumes tests are running from tests/e2e.
	buildCmd := exec.Command("go", "build", "-o", bin, "../../cmd/equality")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build equality: %v\n%s", err, string(out))
	}
	return bin
}

// runBinary executes the binary in dir and returns its combined output and exit code.
func runBinary(t *testing.T, dir, bin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), exitErr.ExitCode()
		}
		t.Fatalf("Failed to run %v: %v", args, err)
	}
	return string(out), 0
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
