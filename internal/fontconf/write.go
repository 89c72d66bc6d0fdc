// ABOUTME: Rule file writing
// ABOUTME: Creates the output directory and atomically replaces the rule file
package fontconf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/harper/fontsel/internal/config"
)

// WriteConfig writes document to outputDir/69-language-selector-ja-jp.conf,
// replacing any previous content. Returns the path written.
func WriteConfig(outputDir, document string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil { //nolint:gosec // fontconfig directories must be world-readable
		return "", fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	path := filepath.Join(outputDir, config.OutputFileName)

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithStaticPermissions(0644))
	if err != nil {
		return "", fmt.Errorf("create pending file for %s: %w", path, err)
	}
	// no-op once CloseAtomicallyReplace has succeeded
	defer func() { _ = pendingFile.Cleanup() }()

	if _, err := io.WriteString(pendingFile, document); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return "", fmt.Errorf("replace %s: %w", path, err)
	}

	return path, nil
}
