// Package handle provides File, an exclusively owned read-only file descriptor.
//
// A File is either open (it owns exactly one live fd) or empty (it owns
// nothing). Ownership moves between Files with Move and Assign; it is never
// shared. The fd is released exactly once: by ReadBytes, by Close, or by a
// runtime cleanup if the owning File becomes unreachable while still open.
//
// Files must not be copied after first use. Pass *File around instead; go vet
// reports value copies through the embedded noCopy marker.
package handle

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// noCopy trips go vet's copylocks check when a File is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// slot holds the fd a File currently owns. It lives in its own allocation so
// the runtime cleanup can reach it without keeping the File alive.
type slot struct {
	fd int
}

// File owns a single read-only file descriptor.
// The zero value is an empty File.
type File struct {
	_ noCopy

	name    string
	s       *slot
	cleanup runtime.Cleanup
	err     error
}

// Open opens path read-only and returns a File owning the descriptor.
// On failure it returns an *OpenError matching ErrCannotOpen; no descriptor
// is left open.
func Open(path string) (*File, error) {
	fd, err := openFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return newFile(fd, path), nil
}

// FromFd takes ownership of an already-open fd. The caller must not use or
// close fd afterwards. A negative fd yields an empty File.
func FromFd(fd int, name string) *File {
	if fd < 0 {
		return &File{name: name}
	}
	return newFile(fd, name)
}

func newFile(fd int, name string) *File {
	f := &File{name: name}
	f.adopt(fd)
	return f
}

// openFile opens a file with O_NOATIME, falling back without it.
// O_NOATIME fails with EPERM for files the caller does not own.
func openFile(path string) (int, error) {
	fd, err := openRetry(path, unix.O_RDONLY|unix.O_CLOEXEC|unix.O_NOATIME)
	if err != nil {
		fd, err = openRetry(path, unix.O_RDONLY|unix.O_CLOEXEC)
	}
	return fd, err
}

func openRetry(path string, flags int) (int, error) {
	for {
		fd, err := unix.Open(path, flags, 0)
		if err != unix.EINTR {
			return fd, err
		}
	}
}

// adopt makes f the owner of fd. f must be empty.
func (f *File) adopt(fd int) {
	if f.s == nil {
		f.s = &slot{fd: -1}
	}
	f.s.fd = fd
	f.cleanup = runtime.AddCleanup(f, closeSlot, f.s)
}

// closeSlot runs when an open File is garbage collected without being released.
func closeSlot(s *slot) {
	if s.fd >= 0 {
		unix.Close(s.fd)
		s.fd = -1
	}
}

// detach gives up ownership of the fd without closing it and returns it.
// Returns -1 if f is empty.
func (f *File) detach() int {
	if f == nil || f.s == nil || f.s.fd < 0 {
		return -1
	}
	fd := f.s.fd
	f.s.fd = -1
	f.cleanup.Stop()
	f.cleanup = runtime.Cleanup{}
	return fd
}

// IsOpen reports whether f owns a live descriptor.
func (f *File) IsOpen() bool {
	return f != nil && f.s != nil && f.s.fd >= 0
}

// Fd returns the owned descriptor, or -1 if f is empty.
// The descriptor remains owned by f.
func (f *File) Fd() int {
	if !f.IsOpen() {
		return -1
	}
	return f.s.fd
}

// Name returns the path f was opened from.
func (f *File) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// Err returns the read error recorded by the last ReadBytes, if any.
// Reaching end of file is not an error.
func (f *File) Err() error {
	if f == nil {
		return nil
	}
	return f.err
}

// Move transfers ownership to a new File and leaves f empty.
// Nothing is opened or closed.
func (f *File) Move() *File {
	if f == nil {
		return &File{}
	}
	dst := &File{name: f.name}
	if fd := f.detach(); fd >= 0 {
		dst.adopt(fd)
	}
	return dst
}

// Assign closes f's current descriptor, if any, and takes ownership of
// src's, leaving src empty. Assigning a File to itself does nothing.
// It returns f so calls can be chained.
func (f *File) Assign(src *File) *File {
	if f == src {
		return f
	}
	f.Close()
	f.err = nil
	if src == nil {
		f.name = ""
		return f
	}
	f.name = src.name
	if fd := src.detach(); fd >= 0 {
		f.adopt(fd)
	}
	return f
}

// Close releases the descriptor. f is empty afterwards whatever the result;
// the error from close(2) is only reported. Closing an empty File is a no-op.
func (f *File) Close() error {
	fd := f.detach()
	if fd < 0 {
		return nil
	}
	return unix.Close(fd)
}

// ReadBytes reads up to n bytes from the start of the remaining data and then
// releases the descriptor. It returns exactly the bytes read, which may be
// fewer than n at end of file. An empty File returns an empty slice.
// A negative n is treated as zero.
//
// ReadBytes is one-shot: f is empty afterwards, so a second call returns an
// empty slice. A failed read(2) ends the read early; see Err.
func (f *File) ReadBytes(n int) []byte {
	fd := f.detach()
	if fd < 0 {
		return []byte{}
	}
	defer unix.Close(fd)

	f.err = nil
	if n <= 0 {
		return []byte{}
	}

	buf := make([]byte, n)
	total := 0
	for total < n {
		m, err := unix.Read(fd, buf[total:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			f.err = &ReadError{Path: f.name, Err: err}
			break
		}
		if m == 0 {
			break // EOF
		}
		total += m
	}
	return buf[:total]
}
