// SPDX-License-Identifier: EPL-2.0

package mp3wav

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/swhelan123/mp3wav/audio"
)

const (
	// DefaultSourceExt is the extension the batch converter selects
	// candidates by.
	DefaultSourceExt = ".mp3"

	// targetExt is fixed: every output is a WAV file.
	targetExt = ".wav"
)

// Outcome classifies the result of one file's conversion.
type Outcome int

const (
	// OutcomeConverted means the output file was written.
	OutcomeConverted Outcome = iota

	// OutcomeDecodeFailed means the source could not be decoded
	// (corrupt or unsupported content).
	OutcomeDecodeFailed

	// OutcomeSourceMissing means the source vanished between the
	// directory listing and the open.
	OutcomeSourceMissing

	// OutcomeFailed covers every other per-file failure.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverted:
		return "converted"
	case OutcomeDecodeFailed:
		return "decode failed"
	case OutcomeSourceMissing:
		return "source missing"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result records one candidate file's conversion attempt.
type Result struct {
	Source  string // candidate file name within the directory
	Output  string // derived output file name
	Outcome Outcome
	Err     error // nil when Outcome is OutcomeConverted
}

// Converter batch-converts the matching audio files of a directory to
// WAV. Candidates are selected by a case-insensitive extension match;
// each candidate is converted independently, and a failure on one
// file never stops the rest of the batch.
type Converter struct {
	// SourceExt selects candidate files. Defaults to
	// DefaultSourceExt when empty.
	SourceExt string

	// Out receives line-oriented progress output.
	Out io.Writer

	// Options applies to every conversion in the batch.
	Options Options

	// Registry overrides DefaultRegistry when non-nil.
	Registry *audio.Registry
}

// NewConverter returns a Converter reporting to out with default
// settings: .mp3 sources, output preserving rate and channels.
func NewConverter(out io.Writer) *Converter {
	return &Converter{
		SourceExt: DefaultSourceExt,
		Out:       out,
	}
}

func (c *Converter) sourceExt() string {
	ext := strings.ToLower(c.SourceExt)
	if ext == "" {
		ext = DefaultSourceExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func (c *Converter) registry() *audio.Registry {
	if c.Registry != nil {
		return c.Registry
	}
	return DefaultRegistry()
}

// ConvertDir lists dir once and converts every file whose lowercased
// name ends with the source extension, writing each output next to
// its source with the extension replaced by ".wav". Pre-existing
// outputs are silently overwritten.
//
// The returned error is non-nil only when the directory itself cannot
// be listed; per-file failures are reported in the Results and on
// c.Out.
func (c *Converter) ConvertDir(dir string) ([]Result, error) {
	out := c.Out
	if out == nil {
		out = io.Discard
	}

	if abs, err := filepath.Abs(dir); err == nil {
		fmt.Fprintf(out, "Scanning directory: %s\n", abs)
	} else {
		fmt.Fprintf(out, "Scanning directory: %s\n", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	ext := c.sourceExt()
	label := strings.ToUpper(strings.TrimPrefix(ext, "."))
	reg := c.registry()

	var results []Result

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ext) {
			continue
		}

		// The suffix match is case-insensitive; the output
		// extension is always lowercase
		output := name[:len(name)-len(ext)] + targetExt

		fmt.Fprintf(out, "Found %s: %s\n", label, name)
		fmt.Fprintf(out, "  Converting '%s' to '%s'...\n", name, output)

		res := Result{Source: name, Output: output}

		err := convertWith(reg, filepath.Join(dir, name), filepath.Join(dir, output), c.Options)
		switch {
		case err == nil:
			res.Outcome = OutcomeConverted
			fmt.Fprintf(out, "  Successfully converted to: %s\n", output)
		case errors.Is(err, fs.ErrNotExist):
			res.Outcome = OutcomeSourceMissing
			res.Err = err
			fmt.Fprintf(out, "  ERROR: File not found '%s'.\n", filepath.Join(dir, name))
		case errors.Is(err, ErrDecode):
			res.Outcome = OutcomeDecodeFailed
			res.Err = err
			fmt.Fprintf(out, "  ERROR: Could not decode '%s': %v\n", name, err)
		default:
			res.Outcome = OutcomeFailed
			res.Err = err
			fmt.Fprintf(out, "  ERROR: An unexpected error occurred converting '%s': %v\n", name, err)
		}

		results = append(results, res)
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "No %s files found in this directory.\n", ext)
	}

	return results, nil
}
