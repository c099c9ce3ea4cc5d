package output

// Result holds the bytes read from a single path.
type Result struct {
	Path   string
	SeqNum int
	Data   []byte
	// Binary is set when Data looks like binary content.
	Binary bool
	// Err is the open error, if the path could not be opened. Data is empty.
	Err error
	// ReadErr is a failure after a successful open; Data holds what was read
	// before it occurred.
	ReadErr error
}

// OK reports whether the path was opened and read without error.
func (r *Result) OK() bool {
	return r.Err == nil && r.ReadErr == nil
}
