package shard

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/on-the-ground/routefold/route"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Files describes a family of per-key files under Dir.
type Files[K comparable, E any] struct {
	Dir    string
	Name   func(K) string // default: fmt.Sprint(key) + ".log"
	Encode func(E) []byte // default: fmt.Sprintln(elem)
	Perm   os.FileMode    // default: 0o644
	Logger *zap.Logger    // default: zap.NewNop()

	// OnOpen, if set, sees every sink right after its file is opened.
	// An aborted pass drops its buckets, so this is the only way to reach
	// and close the files it opened.
	OnOpen func(*Sink)
}

// Path is the file a key is routed to.
func (f Files[K, E]) Path(key K) string {
	name := fmt.Sprint(key) + ".log"
	if f.Name != nil {
		name = f.Name(key)
	}
	return filepath.Join(f.Dir, name)
}

// Seed returns the seed of the file bucket for key.
// The file is created, or appended to, when the first element arrives.
func (f Files[K, E]) Seed(key K) route.Seed[E, *Sink] {
	c := fileCollector[E]{
		encode: f.Encode,
		perm:   f.Perm,
		onOpen: f.OnOpen,
	}
	if c.encode == nil {
		c.encode = func(e E) []byte { return []byte(fmt.Sprintln(e)) }
	}
	if c.perm == 0 {
		c.perm = 0o644
	}
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	path := f.Path(key)
	return route.SeedFunc[*Sink, E, *Sink](c, func() *Sink {
		id := uuid.New().String()
		return &Sink{
			ID:     id,
			Path:   path,
			logger: logger.With(zap.String("sink", id), zap.String("path", path)),
		}
	})
}

// Policy opens a file bucket for every key.
func (f Files[K, E]) Policy() route.Policy[K, E, *Sink] {
	return func(key K) route.Decision[E, *Sink] {
		return route.Create(f.Seed(key))
	}
}

// Sink is an open per-key file.
//
// Not safe for concurrent use.
type Sink struct {
	ID    string
	Path  string
	Lines int

	file   *os.File
	buf    *bufio.Writer
	logger *zap.Logger
	closed bool
}

func (s *Sink) open(perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create shard dir: %w", err)
	}
	file, err := os.OpenFile(s.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, perm)
	if err != nil {
		return fmt.Errorf("failed to open shard file: %w", err)
	}
	s.file = file
	s.buf = bufio.NewWriter(file)
	s.logger.Debug("sink opened")
	return nil
}

func (s *Sink) write(p []byte) error {
	if _, err := s.buf.Write(p); err != nil {
		return fmt.Errorf("failed to write shard file %s: %w", s.Path, err)
	}
	s.Lines++
	return nil
}

// Flush pushes buffered writes to the file.
func (s *Sink) Flush() error {
	if s.buf == nil {
		return nil
	}
	return s.buf.Flush()
}

// Close flushes and closes the file. Closing twice is a no-op.
func (s *Sink) Close() error {
	if s.closed || s.file == nil {
		return nil
	}
	s.closed = true
	err := multierr.Append(s.Flush(), s.file.Close())
	if err != nil {
		s.logger.Warn("failed to close sink", zap.Error(err))
		return err
	}
	s.logger.Debug("sink closed", zap.Int("lines", s.Lines))
	return nil
}

type fileCollector[E any] struct {
	encode func(E) []byte
	perm   os.FileMode
	onOpen func(*Sink)
}

// Fold panics on I/O errors; a fold has no other way out of a pass.
func (c fileCollector[E]) Fold(s *Sink, elem E) *Sink {
	if s.file == nil {
		if err := s.open(c.perm); err != nil {
			panic(err)
		}
		if c.onOpen != nil {
			c.onOpen(s)
		}
	}
	if err := s.write(c.encode(elem)); err != nil {
		panic(err)
	}
	return s
}

// Finalize flushes but leaves the file open for the caller.
func (c fileCollector[E]) Finalize(s *Sink) *Sink {
	if err := s.Flush(); err != nil {
		panic(fmt.Errorf("failed to flush shard file %s: %w", s.Path, err))
	}
	return s
}

// CloseAll closes every sink and returns all close errors combined.
func CloseAll[K comparable](sinks map[K]*Sink) error {
	var err error
	for _, s := range sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}
