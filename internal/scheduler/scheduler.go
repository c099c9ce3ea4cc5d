package scheduler

import (
	"runtime"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/dl/gohead/internal/filter"
	"github.com/dl/gohead/internal/handle"
	"github.com/dl/gohead/internal/output"
)

// StdinPath names standard input in a path list.
const StdinPath = "-"

// Scheduler manages a pool of workers that read file prefixes concurrently.
// Each handle is opened, read and released by a single worker.
type Scheduler struct {
	workers int
	bytes   int
	stdinFd int
}

// New creates a Scheduler with the given number of workers, each reading up
// to bytes bytes per path. If workers is 0, defaults to NumCPU.
func New(workers, bytes int) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{
		workers: workers,
		bytes:   bytes,
		stdinFd: 0,
	}
}

// Run processes paths from the channel and returns results on the result channel.
// Results include sequence numbers, starting at 1, for ordered output.
func (s *Scheduler) Run(paths <-chan string) <-chan output.Result {
	resultCh := make(chan output.Result, s.workers*2)

	// Sequence numbers must follow input order, so they are assigned
	// before a path is handed to a worker.
	type job struct {
		path   string
		seqNum int
	}
	jobs := make(chan job, s.workers)
	go func() {
		defer close(jobs)
		seq := 0
		for p := range paths {
			seq++
			jobs <- job{path: p, seqNum: seq}
		}
	}()

	var wg sync.WaitGroup
	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				result := s.processFile(j.path)
				result.SeqNum = j.seqNum
				resultCh <- result
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	return resultCh
}

func (s *Scheduler) processFile(path string) output.Result {
	result := output.Result{Path: path}

	f, err := s.open(path)
	if err != nil {
		result.Err = err
		return result
	}
	// ReadBytes releases f.
	result.Data = f.ReadBytes(s.bytes)
	result.ReadErr = f.Err()
	result.Binary = filter.IsBinary(result.Data)
	return result
}

// open returns a handle for path. Standard input is duplicated first so
// releasing the handle never closes the process's fd 0.
func (s *Scheduler) open(path string) (*handle.File, error) {
	if path != StdinPath {
		return handle.Open(path)
	}
	fd, err := unix.FcntlInt(uintptr(s.stdinFd), unix.F_DUPFD_CLOEXEC, 0)
	if err != nil {
		return nil, &handle.OpenError{Path: path, Err: err}
	}
	return handle.FromFd(fd, path), nil
}
