package input_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, content string) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "input_test_*")
	require.NoError(t, err, "dir should be created")

	t.Cleanup(func() {
		err := os.RemoveAll(dir)
		require.NoError(t, err, "dir should be removed")
	})

	fileName := fmt.Sprintf("%s/test_%s", dir, uuid.NewString())

	err = os.WriteFile(fileName, []byte(content), 0o600)
	require.NoError(t, err, "file must be written")

	return fileName
}

func missingFileName() string {
	return fmt.Sprintf("no_such_file_%s", uuid.NewString())
}
