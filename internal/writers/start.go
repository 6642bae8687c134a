// internal/writers/start.go
package writers

import (
	"io"

	"hetscan-core/engine"
)

// Start spins up a writer goroutine for comparison rows. Rows are
// buffered and serialized once the channel closes; the table is small
// (one row per scaffold), so whole-table formats like JSON stay simple.
func Start(tbl Table, format string, out io.Writer, header bool, bufSize int) (chan<- engine.Comparison, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Comparison, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var buf []engine.Comparison
		for c := range in {
			buf = append(buf, c)
		}
		errCh <- Write(tbl, format, out, buf, header)
	}()

	return in, errCh
}
