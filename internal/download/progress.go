package download

import (
	"fmt"
	"io"
	"time"
)

// reportInterval caps progress output at roughly five updates per second.
const reportInterval = 200 * time.Millisecond

// progressReader counts bytes flowing through it and prints a throttled
// single-line progress report to out.
type progressReader struct {
	// reader is the wrapped HTTP body.
	reader io.Reader
	// name labels the progress line, usually the destination filename.
	name string
	// total is the expected byte count, or a negative value when unknown.
	total int64
	// read is the number of bytes consumed so far.
	read int64
	// lastReport is when the progress line was last rewritten.
	lastReport time.Time
	// out receives the progress line; nil disables reporting.
	out io.Writer
}

// newProgressReader wraps r with progress reporting for a transfer of the
// given total size (negative when unknown).
func newProgressReader(r io.Reader, name string, total int64, out io.Writer) *progressReader {
	return &progressReader{
		reader: r,
		name:   name,
		total:  total,
		out:    out,
	}
}

// Read passes data through and reports progress at most every reportInterval.
func (p *progressReader) Read(buffer []byte) (int, error) {
	n, err := p.reader.Read(buffer)
	p.read += int64(n)

	if p.out != nil && time.Since(p.lastReport) > reportInterval {
		p.lastReport = time.Now()
		p.report()
	}

	return n, err
}

// Finish prints the final progress line and terminates it with a newline.
func (p *progressReader) Finish() {
	if p.out == nil {
		return
	}

	p.report()
	_, _ = fmt.Fprintln(p.out)
}

// report rewrites the progress line in place.
func (p *progressReader) report() {
	if p.total > 0 {
		percent := float64(p.read) / float64(p.total) * 100 //nolint:mnd // Percentage.
		_, _ = fmt.Fprintf(p.out, "\rDownloading %s: %6.2f%% (%d/%d bytes)", p.name, percent, p.read, p.total)

		return
	}

	_, _ = fmt.Fprintf(p.out, "\rDownloading %s: %d bytes", p.name, p.read)
}
