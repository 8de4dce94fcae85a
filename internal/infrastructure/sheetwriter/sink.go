package sheetwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"multichain_balance_checker/internal/app/port"
)

// New returns the sink for an output format ("xlsx" or "parquet").
func New(format string) (port.ResultSink, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "xlsx":
		return NewXLSXSink(), nil
	case "parquet":
		return NewParquetSink(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// OutputPath joins the output directory and a base name with the sink's extension.
// An empty dir means the working directory.
func OutputPath(dir, base string, sink port.ResultSink) string {
	return filepath.Join(dir, base+sink.Extension())
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
