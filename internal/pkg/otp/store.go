package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

var (
	ErrNotFound        = errors.New("no pending OTP for this phone number")
	ErrExpired         = errors.New("OTP has expired")
	ErrInvalidCode     = errors.New("invalid OTP code")
	ErrTooManyAttempts = errors.New("too many failed OTP attempts")
)

type entry struct {
	code      string
	expiresAt time.Time
	attempts  int
}

// Store keeps pending OTP codes in memory, keyed by phone number. Codes
// expire after ttl and are burned after maxAttempts failed tries.
type Store struct {
	ttl         time.Duration
	maxAttempts int

	mu      sync.Mutex
	entries map[string]entry
}

func NewStore(ttl time.Duration, maxAttempts int) *Store {
	return &Store{
		ttl:         ttl,
		maxAttempts: maxAttempts,
		entries:     make(map[string]entry),
	}
}

// Generate issues a fresh 6-digit code, replacing any pending one.
func (s *Store) Generate(phoneNumber string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[phoneNumber] = entry{
		code:      code,
		expiresAt: time.Now().Add(s.ttl),
	}
	return code, nil
}

// Verify consumes the pending code on success. Failed tries count toward
// the attempt cap; a hit on the cap burns the code.
func (s *Store) Verify(phoneNumber, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[phoneNumber]
	if !ok {
		return ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, phoneNumber)
		return ErrExpired
	}
	if e.code != code {
		e.attempts++
		if e.attempts >= s.maxAttempts {
			delete(s.entries, phoneNumber)
			return ErrTooManyAttempts
		}
		s.entries[phoneNumber] = e
		return ErrInvalidCode
	}

	delete(s.entries, phoneNumber)
	return nil
}
