// Package repository defines the session log interface and errors.
package repository

import (
	"context"

	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/model"
)

// Store keeps a bounded history of archived export sessions.
type Store interface {
	// Append records a session, evicting the oldest entry once the
	// configured capacity is reached.
	Append(ctx context.Context, s model.Session) error

	// Recent returns up to n sessions, newest first.
	// Returns ErrInvalidLimit when n < 1.
	Recent(ctx context.Context, n int) ([]model.Session, error)

	// Count returns the number of sessions currently retained.
	Count(ctx context.Context) int
}
