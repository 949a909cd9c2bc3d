package audit

import "time"

// Envelope carries the bookkeeping fields shared by every persisted entity.
// Rows are never hard-deleted; IsDeleted hides them from all reads.
type Envelope struct {
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsDeleted bool
}
