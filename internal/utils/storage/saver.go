package storage

import (
	"log"
	"sync"
)

// Saver serializes collection snapshots onto a single background
// writer. Mutating callers never block on disk or the database, and
// because a newly enqueued snapshot replaces any snapshot still
// waiting, a later save can never be overtaken in storage by an
// earlier one (last-write-wins).
//
// Save failures are logged and dropped; the in-memory collection
// stays authoritative.
type Saver[T any] struct {
	name string
	save func([]T) error

	pending chan []T
	done    chan struct{}
	wg      sync.WaitGroup
	closeMu sync.Mutex
	closed  bool
}

func NewSaver[T any](name string, save func([]T) error) *Saver[T] {
	s := &Saver[T]{
		name:    name,
		save:    save,
		pending: make(chan []T, 1),
		done:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Enqueue schedules snapshot for persistence, replacing any snapshot
// not yet written.
func (s *Saver[T]) Enqueue(snapshot []T) {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return
	}

	for {
		select {
		case s.pending <- snapshot:
			return
		default:
		}
		select {
		case <-s.pending: // discard the stale snapshot
		default:
		}
	}
}

// Close flushes the pending snapshot, if any, and stops the writer.
func (s *Saver[T]) Close() {
	s.closeMu.Lock()
	if s.closed {
		s.closeMu.Unlock()
		return
	}
	s.closed = true
	s.closeMu.Unlock()

	close(s.done)
	s.wg.Wait()
}

func (s *Saver[T]) run() {
	defer s.wg.Done()
	for {
		select {
		case snapshot := <-s.pending:
			if err := s.save(snapshot); err != nil {
				log.Printf("[%s] save error: %v", s.name, err)
			}
		case <-s.done:
			// final drain
			select {
			case snapshot := <-s.pending:
				if err := s.save(snapshot); err != nil {
					log.Printf("[%s] save error: %v", s.name, err)
				}
			default:
			}
			return
		}
	}
}
