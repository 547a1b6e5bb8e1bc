// Package scanner parses many Java source files at once. Inputs may be
// single files, directory trees or .zip/.jar source archives; archives
// nested inside archives are opened as well.
package scanner

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/javasyntax/java/ast"
	"github.com/dhamidi/javasyntax/java/parser"
)

var log = commonlog.GetLogger("javasyntax.scanner")

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Request names the inputs of one scan.
type Request struct {
	ID        string
	Paths     []string
	CreatedAt time.Time
}

// Result is the outcome of parsing one source file. Err holds the parser's
// *LexError or *SyntaxError, or the error met reading the file.
type Result struct {
	Path     string
	Unit     *ast.CompilationUnit
	Err      error
	Duration time.Duration
}

// Job tracks a request submitted to a background Scanner.
type Job struct {
	ID        string
	Status    Status
	Request   Request
	Results   []Result
	Error     string
	StartedAt time.Time
	EndedAt   time.Time
	Progress  int
	Total     int
}

func (j *Job) ProgressPercent() int {
	if j.Total == 0 {
		return 0
	}
	return (j.Progress * 100) / j.Total
}

// Failed returns the results whose file could not be parsed.
func (j *Job) Failed() []Result {
	var failed []Result
	for _, r := range j.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

type Option func(*Scanner)

// WithConcurrency bounds the number of files parsed at the same time.
// Values below one mean runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(s *Scanner) {
		s.concurrency = n
	}
}

// WithParserOptions passes options to every parser the scanner creates.
func WithParserOptions(opts ...parser.Option) Option {
	return func(s *Scanner) {
		s.parserOpts = append(s.parserOpts, opts...)
	}
}

type Scanner struct {
	concurrency int
	parserOpts  []parser.Option

	mu     sync.RWMutex
	jobs   map[string]*Job
	nextID int

	// sendMu guards requests and closed; the worker never takes it.
	sendMu   sync.Mutex
	requests chan Request
	closed   bool
	start    sync.Once
}

func New(opts ...Option) *Scanner {
	s := &Scanner{
		jobs:     make(map[string]*Job),
		requests: make(chan Request, 100),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.concurrency < 1 {
		s.concurrency = runtime.NumCPU()
	}
	return s
}

// source is one .java file, on disk or inside an archive.
type source struct {
	path string
	read func() ([]byte, error)
}

// Scan parses every Java file reachable from paths and returns one result
// per file, sorted by path. Parse failures are reported in the results; the
// returned error is for inputs that cannot be opened at all, or ctx being
// cancelled.
func (s *Scanner) Scan(ctx context.Context, paths ...string) ([]Result, error) {
	return s.scan(ctx, paths, nil)
}

func (s *Scanner) scan(ctx context.Context, paths []string, progress func(done, total int)) ([]Result, error) {
	c := &collector{}
	defer c.close()
	for _, path := range paths {
		if err := c.add(path); err != nil {
			return nil, err
		}
	}
	log.Debugf("scanning %d files with concurrency %d", len(c.sources), s.concurrency)

	results := make([]Result, len(c.sources))
	var mu sync.Mutex
	done := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, src := range c.sources {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.parse(src)
			if progress != nil {
				mu.Lock()
				done++
				progress(done, len(c.sources))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

func (s *Scanner) parse(src source) Result {
	start := time.Now()
	r := Result{Path: src.path}
	data, err := src.read()
	if err != nil {
		r.Err = errors.Wrapf(err, "read %s", src.path)
	} else {
		opts := append([]parser.Option{parser.WithFile(src.path)}, s.parserOpts...)
		r.Unit, r.Err = parser.ParseFile(data, opts...)
	}
	r.Duration = time.Since(start)
	if r.Err != nil {
		log.Debugf("%s: %v", src.path, r.Err)
	}
	return r
}

// Submit queues req for a background scan and returns the job id. The
// worker goroutine is started on first use.
func (s *Scanner) Submit(req Request) string {
	s.start.Do(func() { go s.run() })

	s.mu.Lock()
	s.nextID++
	req.ID = fmt.Sprintf("%d", s.nextID)
	req.CreatedAt = time.Now()
	job := &Job{
		ID:      req.ID,
		Status:  StatusPending,
		Request: req,
	}
	s.jobs[req.ID] = job
	s.mu.Unlock()

	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if s.closed {
		s.mu.Lock()
		job.Status = StatusFailed
		job.Error = "scanner closed"
		s.mu.Unlock()
		return req.ID
	}
	s.requests <- req
	return req.ID
}

// Close stops the background worker after the queued jobs finish.
func (s *Scanner) Close() {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.requests)
	}
}

func (s *Scanner) run() {
	for req := range s.requests {
		s.process(req)
	}
}

func (s *Scanner) process(req Request) {
	s.mu.Lock()
	job := s.jobs[req.ID]
	job.Status = StatusInProgress
	job.StartedAt = time.Now()
	s.mu.Unlock()

	var results []Result
	var err error
	if len(req.Paths) == 0 {
		err = errors.New("no paths provided")
	} else {
		results, err = s.scan(context.Background(), req.Paths, func(done, total int) {
			s.mu.Lock()
			job.Progress = done
			job.Total = total
			s.mu.Unlock()
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	job.EndedAt = time.Now()
	job.Results = results
	if err != nil {
		job.Status = StatusFailed
		job.Error = err.Error()
		log.Errorf("scan %s: %v", job.ID, err)
		return
	}
	job.Total = len(results)
	job.Progress = len(results)
	job.Status = StatusCompleted
}

// Get returns a snapshot of the job with the given id.
func (s *Scanner) Get(id string) (Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

func (s *Scanner) List() []Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	jobs := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, *j)
	}
	sort.Slice(jobs, func(i, k int) bool {
		if len(jobs[i].ID) != len(jobs[k].ID) {
			return len(jobs[i].ID) < len(jobs[k].ID)
		}
		return jobs[i].ID < jobs[k].ID
	})
	return jobs
}

// Wait blocks until the job is completed or failed, or ctx is done.
func (s *Scanner) Wait(ctx context.Context, id string) (Job, error) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		job, ok := s.Get(id)
		if !ok {
			return Job{}, errors.Errorf("unknown job %q", id)
		}
		if job.Status == StatusCompleted || job.Status == StatusFailed {
			return job, nil
		}
		select {
		case <-ctx.Done():
			return job, ctx.Err()
		case <-ticker.C:
		}
	}
}

// collector gathers sources from files, directories and archives.
type collector struct {
	sources []source
	closers []io.Closer
}

func (c *collector) close() {
	for _, cl := range c.closers {
		cl.Close()
	}
}

func (c *collector) add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "stat %s", path)
	}
	if info.IsDir() {
		return c.addDir(path)
	}
	if isArchive(path) {
		return c.addArchive(path)
	}
	c.addFile(path)
	return nil
}

func (c *collector) addFile(path string) {
	c.sources = append(c.sources, source{
		path: path,
		read: func() ([]byte, error) { return os.ReadFile(path) },
	})
}

func (c *collector) addDir(root string) error {
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch {
		case isJava(p):
			c.addFile(p)
		case isArchive(p):
			return c.addArchive(p)
		}
		return nil
	})
	return errors.Wrapf(err, "walk %s", root)
}

func (c *collector) addArchive(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return errors.Wrapf(err, "open archive %s", path)
	}
	c.closers = append(c.closers, r)
	return c.addZipEntries(path, &r.Reader)
}

// addZipEntries adds the .java entries of r, naming them prefix!/entry.
// Nested archives are read into memory and walked the same way.
func (c *collector) addZipEntries(prefix string, r *zip.Reader) error {
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := prefix + "!/" + f.Name
		switch {
		case isJava(f.Name):
			c.sources = append(c.sources, source{
				path: name,
				read: func() ([]byte, error) { return readZipFile(f) },
			})
		case isArchive(f.Name):
			data, err := readZipFile(f)
			if err != nil {
				return errors.Wrapf(err, "read %s", name)
			}
			nested, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
			if err != nil {
				return errors.Wrapf(err, "open archive %s", name)
			}
			if err := c.addZipEntries(name, nested); err != nil {
				return err
			}
		}
	}
	return nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func isJava(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".java")
}

func isArchive(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zip", ".jar":
		return true
	}
	return false
}
