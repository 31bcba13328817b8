package skel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		// Create temp dir for this test file
		tmpDir, err := os.MkdirTemp("", "rskel-test-*")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "file":
				return handleFile(t, d, tmpDir)
			case "skeleton":
				return handleSkeleton(tmpDir)
			default:
				t.Fatalf("unknown command: %s", d.Cmd)
				return ""
			}
		})
	})
}

// handleFile creates a file in the temp directory
func handleFile(t *testing.T, d *datadriven.TestData, tmpDir string) string {
	var name string
	d.ScanArgs(t, "name", &name)

	absPath := filepath.Join(tmpDir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(absPath), 0755))
	require.NoError(t, os.WriteFile(absPath, []byte(d.Input), 0644))

	return "" // file command produces no output
}

// handleSkeleton runs the driver over the temp directory. Output written
// before a failure is kept, followed by the error line, matching the
// abort-on-first-error contract.
func handleSkeleton(tmpDir string) string {
	var buf strings.Builder
	if err := Run(Options{Root: tmpDir}, &buf); err != nil {
		return buf.String() + "error: " + err.Error() + "\n"
	}
	return buf.String()
}
