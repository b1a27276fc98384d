package cli

import "os"

// createExportFile opens the CSV target for writing, truncating any
// previous export at the same path.
func createExportFile(path string) (*os.File, error) {
	return os.Create(path)
}
