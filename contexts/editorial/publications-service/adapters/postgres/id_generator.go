package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator creates the opaque identifiers assigned at creation time.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
