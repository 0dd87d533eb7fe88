package storage

// ApiStore defines the complete set of operations needed by the HTTP API and
// the circulation engine. It composes the granular interfaces to provide a
// clear boundary for request-driven data access.
type ApiStore interface {
	ItemRegistry
	LoanStore
	FineStore
	ReservationStore
	MemberDirectory
}

// SweepStore defines the operations the overdue sweeper needs: enumerate
// overdue open loans, insert fines idempotently, and expire stale
// reservations.
type SweepStore interface {
	LoanReader
	FineWriter
	ReservationExpirer
}
