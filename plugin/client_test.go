package plugin

import (
	"path/filepath"
	"testing"
)

func TestOpen_MissingBinary(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "lintrc-plugin-missing"), nil)
	if err == nil {
		t.Error("Open() should fail for a missing binary")
	}
}
