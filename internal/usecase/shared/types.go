package shared

import (
	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side view types.
type BookSnapshot struct {
	ID     uuid.UUID
	Title  string
	Author string
}

type RejectedSibling struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
}
