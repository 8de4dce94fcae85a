package sheetwriter

import (
	"fmt"
	"strconv"

	"multichain_balance_checker/internal/app/port"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

const parquetWriterParallelism = 1

// ParquetSink writes a table as a flat parquet file. Numeric columns are DOUBLE, the others UTF8.
// Every column is optional, so empty cells are stored as nulls.
type ParquetSink struct{}

// NewParquetSink creates a new ParquetSink.
func NewParquetSink() *ParquetSink {
	return &ParquetSink{}
}

// Extension implements port.ResultSink.
func (s *ParquetSink) Extension() string { return ".parquet" }

// Write implements port.ResultSink.
func (s *ParquetSink) Write(path string, table port.Table) (err error) {
	if err := ensureDir(path); err != nil {
		return err
	}

	numeric := func(i int) bool { return i < len(table.Numeric) && table.Numeric[i] }
	md := make([]string, len(table.Header))
	for i, name := range table.Header {
		if numeric(i) {
			md[i] = fmt.Sprintf("name=%s, type=DOUBLE, repetitiontype=OPTIONAL", name)
		} else {
			md[i] = fmt.Sprintf("name=%s, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN, repetitiontype=OPTIONAL", name)
		}
	}

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file %s: %w", path, err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close parquet file %s: %w", path, cerr)
		}
	}()

	pw, err := writer.NewCSVWriter(md, fw, parquetWriterParallelism)
	if err != nil {
		return fmt.Errorf("failed to init parquet writer: %w", err)
	}

	for i, row := range table.Rows {
		rec := make([]any, len(table.Header))
		for j := range rec {
			if j >= len(row) || row[j] == nil {
				continue
			}
			if numeric(j) {
				v, ok := row[j].(float64)
				if !ok {
					return fmt.Errorf("row %d column %s: expected a number, got %T", i, table.Header[j], row[j])
				}
				rec[j] = v
				continue
			}
			rec[j] = textValue(row[j])
		}
		if err := pw.Write(rec); err != nil {
			return fmt.Errorf("failed to write parquet row %d: %w", i, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to flush parquet file %s: %w", path, err)
	}
	return nil
}

func textValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
