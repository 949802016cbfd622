package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"venuebook/models"
)

const (
	otpMin = 100000
	otpMax = 999999
)

// OTPStore holds at most one pending code per email.
type OTPStore interface {
	// Set stores code for email, replacing any pending one.
	Set(ctx context.Context, email, code string, ttl time.Duration) error
	// Consume deletes the pending code if it equals code. It returns
	// ErrOTPNotFound when nothing is pending and ErrOTPMismatch when the
	// code differs, leaving the pending code in place.
	Consume(ctx context.Context, email, code string) error
}

// GenerateOTP draws a six digit code uniformly from 100000-999999.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}

// IssueOTP generates a code, stores it for email and mails it.
func IssueOTP(ctx context.Context, store OTPStore, mailer Mailer, email string, ttl time.Duration) error {
	otp, err := GenerateOTP()
	if err != nil {
		return err
	}
	if err = store.Set(ctx, email, otp, ttl); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}
	if err = SendOTP(ctx, mailer, email, otp); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}
	return nil
}

func VerifyOTP(ctx context.Context, store OTPStore, email, otp string) error {
	return store.Consume(ctx, email, otp)
}

// MemoryOTPStore keeps codes in process memory. Expired entries are swept
// on every Set.
type MemoryOTPStore struct {
	mu       sync.Mutex
	sessions map[string]models.OTPSession
	now      func() time.Time
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		sessions: make(map[string]models.OTPSession),
		now:      time.Now,
	}
}

func (s *MemoryOTPStore) Set(_ context.Context, email, code string, ttl time.Duration) error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, key)
		}
	}
	s.sessions[email] = models.OTPSession{Code: code, ExpiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryOTPStore) Consume(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[email]
	if !ok {
		return ErrOTPNotFound
	}
	if session.Expired(s.now()) {
		delete(s.sessions, email)
		return ErrOTPNotFound
	}
	if session.Code != code {
		return ErrOTPMismatch
	}
	delete(s.sessions, email)
	return nil
}
