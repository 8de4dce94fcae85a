package walletloader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinPath selects standard input as the address source.
const StdinPath = "-"

// maxLineBytes bounds a single input line.
const maxLineBytes = 1024 * 1024

// AddressLoader reads newline-delimited addresses from a file or a stream.
type AddressLoader struct {
	stdin      io.Reader
	loggerInfo func(msg string, args ...any)
}

// NewAddressLoader creates a new AddressLoader. stdin is read when the path is empty or "-".
func NewAddressLoader(stdin io.Reader, loggerInfo func(msg string, args ...any)) *AddressLoader {
	return &AddressLoader{
		stdin:      stdin,
		loggerInfo: loggerInfo,
	}
}

// Load returns the addresses from path, or from stdin when path is empty or "-".
func (l *AddressLoader) Load(path string) ([]string, error) {
	if path == "" || path == StdinPath {
		if l.stdin == nil {
			return nil, fmt.Errorf("no input file given and no stdin available")
		}
		addresses, err := ReadAddresses(l.stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading addresses from stdin: %w", err)
		}
		l.logLoaded("stdin", len(addresses))
		return addresses, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open address file %s: %w", path, err)
	}
	defer file.Close()

	addresses, err := ReadAddresses(file)
	if err != nil {
		return nil, fmt.Errorf("error scanning address file %s: %w", path, err)
	}
	l.logLoaded(path, len(addresses))
	return addresses, nil
}

func (l *AddressLoader) logLoaded(source string, count int) {
	if l.loggerInfo != nil {
		l.loggerInfo("Addresses loaded", "count", count, "source", source)
	}
}

// ReadAddresses splits r into trimmed, non-blank lines. Addresses are not validated here;
// a malformed one surfaces as a per-network error when it is looked up.
func ReadAddresses(r io.Reader) ([]string, error) {
	var addresses []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return addresses, nil
}

// Normalize trims every entry and drops the blank ones, preserving order.
func Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
