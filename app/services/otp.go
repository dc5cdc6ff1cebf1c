package services

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"
)

// OTPTTL bounds how long a login code stays valid. A code is also consumed
// by the first successful verification, whichever comes first.
const OTPTTL = 5 * time.Minute

// OTPStore keeps short-lived login codes keyed by mobile number.
type OTPStore interface {
	// Put stores a code for the mobile number, replacing any previous one.
	Put(mobile, code string) error
	// Verify consumes the code on a match. A second call with the same pair
	// fails even inside the TTL window.
	Verify(mobile, code string) (bool, error)
}

// GenerateOTP returns a random 4-digit code.
func GenerateOTP() string {
	var n uint32
	if err := binary.Read(rand.Reader, binary.BigEndian, &n); err != nil {
		panic("generate random otp failed")
	}
	return fmt.Sprintf("%04d", 1000+n%9000)
}

// MemoryOTPStore is the in-process fallback used when Redis is not
// configured. Entries expire lazily on access.
type MemoryOTPStore struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	now     func() time.Time
}

type otpEntry struct {
	code      string
	expiresAt time.Time
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		entries: make(map[string]otpEntry),
		now:     time.Now,
	}
}

func (s *MemoryOTPStore) Put(mobile, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[mobile] = otpEntry{code: code, expiresAt: s.now().Add(OTPTTL)}
	return nil
}

func (s *MemoryOTPStore) Verify(mobile, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[mobile]
	if !ok {
		return false, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, mobile)
		return false, nil
	}
	if entry.code != code {
		return false, nil
	}

	// single use: consume on success
	delete(s.entries, mobile)
	return true, nil
}
