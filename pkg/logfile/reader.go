package logfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// maxLogSize bounds how much log text is read into memory (64 MB).
const maxLogSize = 64 << 20

// ReadFile reads an entire log file into memory, transparently
// decompressing files with a .gz extension.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return "", fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("opening gzip log file %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(io.LimitReader(r, maxLogSize+1))
	if err != nil {
		return "", fmt.Errorf("reading log file %s: %w", path, err)
	}
	if len(data) > maxLogSize {
		return "", fmt.Errorf("log file %s exceeds %d byte limit", path, maxLogSize)
	}

	return string(data), nil
}
