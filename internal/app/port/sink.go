package port

// Table is a header plus rows of cell values (string, float64 or nil).
type Table struct {
	Header []string
	Rows   [][]any
	// Numeric marks columns whose cells are all float64 or nil. Typed sinks store them as numbers.
	Numeric []bool
}

// ResultSink serializes a finished table to a file.
type ResultSink interface {
	// Write creates or truncates path and stores the table into it.
	Write(path string, table Table) error
	// Extension is the file suffix, including the dot.
	Extension() string
}
