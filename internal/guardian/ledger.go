// Package guardian is the parental-control satellite: an authenticated
// ledger of play sessions, an optional allowed-hours window that can veto
// play, and the revival override for a dead pet.
package guardian

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ayabdnabi/virtual-pet/internal/pet"
)

// DefaultSecret guards a fresh ledger until the guardian picks their own.
const DefaultSecret = "1234"

// SessionRecord is one completed play session.
type SessionRecord struct {
	ID         string    `toml:"id"`
	StartedAt  time.Time `toml:"startedAt"`
	DurationMs int64     `toml:"durationMs"`
}

// Ledger holds the guardian's secret, the allowed-hours window, and the
// cumulative play statistics. Fields are exported for the TOML codec; the
// secret is stored salted and hashed, never in the clear.
type Ledger struct {
	SecretSalt string `toml:"secretSalt"`
	SecretHash string `toml:"secretHash"`

	Enabled   bool `toml:"limitEnabled"`
	StartHour int  `toml:"startHour"`
	EndHour   int  `toml:"endHour"`

	TotalPlayMs  int64 `toml:"totalPlayMs"`
	SessionCount int   `toml:"sessionCount"`

	Sessions []SessionRecord `toml:"sessions"`
}

// NewLedger builds a fresh ledger: window disabled over the full day, no
// history, secret set to DefaultSecret.
func NewLedger() (*Ledger, error) {
	l := &Ledger{EndHour: 24}
	if err := l.SetSecret(DefaultSecret); err != nil {
		return nil, err
	}
	return l, nil
}

// SetSecret replaces the guardian secret, re-salting the stored hash.
func (l *Ledger) SetSecret(secret string) error {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	l.SecretSalt = hex.EncodeToString(salt)
	l.SecretHash = hex.EncodeToString(secretHash(salt, secret))
	return nil
}

// Authenticate checks a candidate secret in constant time.
func (l *Ledger) Authenticate(secret string) bool {
	salt, err := hex.DecodeString(l.SecretSalt)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(l.SecretHash)
	if err != nil {
		return false
	}
	got := secretHash(salt, secret)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func secretHash(salt []byte, secret string) []byte {
	b := make([]byte, 0, len(salt)+len(secret))
	b = append(b, salt...)
	b = append(b, secret...)
	sum := sha256.Sum256(b)
	return sum[:]
}

// PlayAllowed reports whether play may start at now. With the window
// disabled every hour is allowed; enabled, the hour must fall in
// [StartHour, EndHour).
func (l *Ledger) PlayAllowed(now time.Time) bool {
	if !l.Enabled {
		return true
	}
	hour := now.Hour()
	return hour >= l.StartHour && hour < l.EndHour
}

// SetWindow updates the allowed-hours window. Hours are whole clock hours;
// an empty window (start >= end) is expressible and simply never allows
// play while enabled.
func (l *Ledger) SetWindow(startHour, endHour int) error {
	if startHour < 0 || startHour > 24 || endHour < 0 || endHour > 24 {
		return fmt.Errorf("hours must be within 0..24, got %d..%d", startHour, endHour)
	}
	l.StartHour = startHour
	l.EndHour = endHour
	return nil
}

// SetEnabled toggles window enforcement.
func (l *Ledger) SetEnabled(enabled bool) {
	l.Enabled = enabled
}

// ResetRestrictions disables the window and opens it back to the full day.
func (l *Ledger) ResetRestrictions() {
	l.Enabled = false
	l.StartHour = 0
	l.EndHour = 24
}

// RecordSession adds a completed session to the ledger totals and history.
// Non-positive durations are recorded as zero.
func (l *Ledger) RecordSession(startedAt time.Time, d time.Duration) {
	if d < 0 {
		d = 0
	}
	l.TotalPlayMs += d.Milliseconds()
	l.SessionCount++
	l.Sessions = append(l.Sessions, SessionRecord{
		ID:         uuid.NewString(),
		StartedAt:  startedAt,
		DurationMs: d.Milliseconds(),
	})
}

// TotalPlay is the lifetime play time across sessions.
func (l *Ledger) TotalPlay() time.Duration {
	return time.Duration(l.TotalPlayMs) * time.Millisecond
}

// AveragePlay is the mean session length, zero when nothing is recorded.
func (l *Ledger) AveragePlay() time.Duration {
	if l.SessionCount == 0 {
		return 0
	}
	return time.Duration(l.TotalPlayMs/int64(l.SessionCount)) * time.Millisecond
}

// ResetStats clears the play totals and history. The window and secret
// stay as they are.
func (l *Ledger) ResetStats() {
	l.TotalPlayMs = 0
	l.SessionCount = 0
	l.Sessions = nil
}

// Revive restores a dead pet to full stats. A living pet is refused.
func (l *Ledger) Revive(p *pet.Pet) bool {
	if !p.Dead() {
		return false
	}
	p.ResetState()
	return true
}
