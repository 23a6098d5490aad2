package node

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path"
	"strconv"
	"strings"
	"unicode"

	"github.com/coroot/uptime-reporter/common"
)

// at most this many bytes of the first line are parsed
const maxUptimeLineLen = 63

var openFile = func(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

type ErrorKind int

const (
	SourceUnavailable ErrorKind = iota + 1
	SourceEmpty
	MalformedValue
)

func (k ErrorKind) String() string {
	switch k {
	case SourceUnavailable:
		return "source unavailable"
	case SourceEmpty:
		return "source empty"
	case MalformedValue:
		return "malformed value"
	}
	return "unknown"
}

// UptimeError is the only error type returned by Uptime.
type UptimeError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *UptimeError) Error() string {
	switch e.Kind {
	case SourceUnavailable:
		err := e.Err
		var pe *fs.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		return fmt.Sprintf("failed to open %s: %s", e.Path, err)
	case SourceEmpty:
		return fmt.Sprintf("could not read from %s", e.Path)
	case MalformedValue:
		return fmt.Sprintf("invalid format of %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *UptimeError) Unwrap() error {
	return e.Err
}

func UptimePath(procRoot string) string {
	return path.Join(procRoot, "uptime")
}

// Uptime returns the number of seconds since boot reported by <procRoot>/uptime.
// Only the first field is used, the idle time is ignored.
func Uptime(procRoot string) (float64, error) {
	p := UptimePath(procRoot)
	f, err := openFile(p)
	if err != nil {
		return 0, &UptimeError{Kind: SourceUnavailable, Path: p, Err: err}
	}
	line, err := common.ReadLine(f, maxUptimeLineLen)
	truncated := false
	if err == nil && len(line) == maxUptimeLineLen && !strings.HasSuffix(line, "\n") {
		var b [1]byte
		n, _ := f.Read(b[:])
		truncated = n > 0 && !unicode.IsSpace(rune(b[0]))
	}
	f.Close()
	if err != nil {
		return 0, &UptimeError{Kind: SourceEmpty, Path: p, Err: err}
	}
	v, err := parseUptime(line, truncated)
	if err != nil {
		return 0, &UptimeError{Kind: MalformedValue, Path: p, Err: err}
	}
	return v, nil
}

// If the line was cut at the length limit, a first field running up to the cut is incomplete.
func parseUptime(line string, truncated bool) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("no value")
	}
	if truncated && len(fields) == 1 && strings.HasSuffix(line, fields[0]) {
		return 0, fmt.Errorf("value exceeds %d bytes", maxUptimeLineLen)
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("out of range: %s", fields[0])
	}
	return v, nil
}
