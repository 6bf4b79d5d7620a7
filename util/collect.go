package util

import (
	"errors"
	"sync"
)

// ErrorCollector accumulates validation failures so that a caller can surface
// every problem at once instead of stopping at the first one. Degree
// validation uses this to report all out-of-range degrees of a set in a
// single error.
type ErrorCollector interface {
	Add(err error)
	Combined() error
}

type errorCollector struct {
	errors []error
	lock   *sync.Mutex
}

func NewErrorCollector() ErrorCollector {
	return &errorCollector{
		lock: &sync.Mutex{},
	}
}

func (s *errorCollector) Add(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.errors = append(s.errors, err)
}

func (s *errorCollector) Combined() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.errors) > 0 {
		return errors.Join(s.errors...)
	}

	return nil
}
