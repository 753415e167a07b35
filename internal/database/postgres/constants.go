package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// memberColumns are the array columns of the members table, in write order.
// The shared bank has no column; it lives in the shared member's bank.
var memberColumns = []string{
	"stats",
	"coordinates",
	"skills",
	"quests",
	"inventory",
	"equipment",
	"bank",
	"rune_pouch",
	"seed_vault",
	"deposited",
	"diary_vars",
}
