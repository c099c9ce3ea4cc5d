package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes formatted output to a file descriptor, using writev.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return NewFdWriter(int(os.Stdout.Fd()))
}

// NewFdWriter creates a Writer for fd. The Writer does not own fd.
func NewFdWriter(fd int) *Writer {
	return &Writer{fd: fd}
}

// Write writes all of data, retrying short writes and EINTR.
func (w *Writer) Write(data []byte) error {
	for len(data) > 0 {
		iovs := [][]byte{data}
		n, err := unix.Writev(w.fd, iovs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// OrderedWriter receives results from a channel and writes them in sequence order.
// This ensures output is deterministic even with parallel workers.
type OrderedWriter struct {
	writer    *Writer
	formatter Formatter
	multiFile bool
	buf       []byte
}

// NewOrderedWriter creates an OrderedWriter.
func NewOrderedWriter(w *Writer, f Formatter, multiFile bool) *OrderedWriter {
	return &OrderedWriter{
		writer:    w,
		formatter: f,
		multiFile: multiFile,
	}
}

// WriteOrdered consumes results from the channel, buffering out-of-order results
// and writing them in sequence-number order. Sequence numbers start at 1.
// onResult, if set, sees every result in output order before it is written.
func (ow *OrderedWriter) WriteOrdered(results <-chan Result, onResult func(Result)) error {
	nextSeq := 1
	pending := make(map[int]Result)
	var firstErr error

	emit := func(r Result) {
		if onResult != nil {
			onResult(r)
		}
		if err := ow.writeResult(r); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for r := range results {
		if r.SeqNum != nextSeq {
			pending[r.SeqNum] = r
			continue
		}
		emit(r)
		nextSeq++
		// Flush any consecutive pending results
		for {
			p, ok := pending[nextSeq]
			if !ok {
				break
			}
			emit(p)
			delete(pending, nextSeq)
			nextSeq++
		}
	}
	return firstErr
}

func (ow *OrderedWriter) writeResult(r Result) error {
	ow.buf = ow.formatter.Format(ow.buf[:0], r, ow.multiFile)
	return ow.writer.Write(ow.buf)
}
