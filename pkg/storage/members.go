package storage

import (
	"context"

	"github.com/Ian12467/library-circulation/pkg/models"
)

// MemberDirectory is the read-only contract against the external member store.
// The engine consults it for eligibility and never writes through it.
type MemberDirectory interface {
	// GetMember retrieves a member's eligibility record by ID.
	GetMember(ctx context.Context, memberID string) (*models.Member, error)
}
