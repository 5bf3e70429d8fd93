package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/logsculpt/logsculpt/pkg/logfile"
	"github.com/logsculpt/logsculpt/pkg/rewrite"
	"github.com/logsculpt/logsculpt/pkg/session"
)

// runEdits is the shared edit/apply pipeline: read a log, apply the
// operations in a session, rewrite the text, and emit it.
func runEdits(path string, ops []session.EditOperation, fieldOverride []string, outPath string, inPlace bool, historyCapacity int) error {
	if inPlace && outPath != "" {
		return fmt.Errorf("--in-place and --out are mutually exclusive")
	}

	text, err := logfile.ReadFile(path)
	if err != nil {
		return err
	}

	result := logfile.Parse(text)
	if result.Empty() {
		// Sentinel, not a runtime error: report it and exit 1, matching
		// the parse and detect commands.
		fmt.Fprintf(os.Stderr, "Warning: %s contains no epoch data\n", path)
		ExitCode = 1
		return nil
	}

	var sessOpts []session.Option
	if historyCapacity > 0 {
		sessOpts = append(sessOpts, session.WithHistoryCapacity(historyCapacity))
	}
	sess := session.New(result, sessOpts...)

	for i, op := range ops {
		if err := sess.Apply(op); err != nil {
			return fmt.Errorf("applying edit %d: %w", i+1, err)
		}
	}

	fields := sess.ModifiedFieldSet()
	if len(fieldOverride) > 0 {
		fields = make(map[string]bool, len(fieldOverride))
		for _, f := range fieldOverride {
			fields[f] = true
		}
	}

	updated, touched := rewrite.Rewrite(text, sess.Records(), fields)

	if inPlace {
		outPath = path
	}
	if outPath == "" {
		if _, err := os.Stdout.WriteString(updated); err != nil {
			return err
		}
	} else if err := writeLog(outPath, updated); err != nil {
		return err
	}

	epochs := make([]int, 0, len(touched))
	for epoch := range touched {
		epochs = append(epochs, epoch)
	}
	sort.Ints(epochs)
	fmt.Fprintf(os.Stderr, "Rewrote %d epoch(s) across fields %v\n", len(epochs), sortedFields(fields))

	return nil
}

// writeLog writes log text, gzip-compressing when the target has a .gz
// extension.
func writeLog(path, text string) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		if _, err := gz.Write([]byte(text)); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err := gz.Close(); err != nil {
			_ = f.Close()
			return fmt.Errorf("closing gzip stream for %s: %w", path, err)
		}
	} else if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func sortedFields(fields map[string]bool) []string {
	out := make([]string, 0, len(fields))
	for f := range fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
