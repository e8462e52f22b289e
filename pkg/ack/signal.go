package ack

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrTimeout = errors.New("response not received within time limit")

// Signal is the hand-off between the listener and the one caller waiting for
// a reply: a pending flag plus the most recent reply text. Set overwrites any
// unconsumed reply; Consume clears the flag and takes the text exactly once.
//
// Read commands ("battery?", "hardware?") are answered with a bare value, not
// "ok". While a query is armed, Offer accepts any reply.
type Signal struct {
	mux      sync.Mutex
	pending  bool
	query    bool
	response string
	notify   chan struct{}
}

func NewSignal() *Signal {
	return &Signal{notify: make(chan struct{}, 1)}
}

func (s *Signal) Set(response string) {
	s.mux.Lock()
	s.response = response
	s.pending = true
	s.mux.Unlock()

	s.wake()
}

// Offer stores response if it is an acknowledgment or a query is armed.
func (s *Signal) Offer(response string) bool {
	s.mux.Lock()
	if !s.query && !Qualifies(response) {
		s.mux.Unlock()
		return false
	}
	s.response = response
	s.pending = true
	s.mux.Unlock()

	s.wake()
	return true
}

func (s *Signal) wake() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// ArmQuery makes Offer accept any reply until DisarmQuery.
func (s *Signal) ArmQuery() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.query = true
}

func (s *Signal) DisarmQuery() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.query = false
}

func (s *Signal) Consume() (response string, ok bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if !s.pending {
		return "", false
	}
	s.pending = false
	return s.response, true
}

func (s *Signal) Pending() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.pending
}

// Await consumes the next reply, waiting up to timeout for one to arrive.
// On timeout or cancellation the signal is left untouched, so a reply that
// turns up late is handed to whoever waits next.
func (s *Signal) Await(ctx context.Context, timeout time.Duration) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		if response, ok := s.Consume(); ok {
			return response, nil
		}
		select {
		case <-s.notify:
		case <-timer.C:
			return "", ErrTimeout
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}
