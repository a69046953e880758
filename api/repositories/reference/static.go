package repositories

import (
	"context"
	"fmt"
	"winalyze/pkg/stats"
)

// Reference repository serving the built-in table, used when no database is configured.
type staticReferenceRepository struct{}

// Create a repository over the built-in reference table.
func NewStaticReferenceRepository() ReferenceRepository {
	return staticReferenceRepository{}
}

func (staticReferenceRepository) ListReferences(ctx context.Context) ([]stats.RankReference, error) {
	return stats.DefaultReferences(), nil
}

func (staticReferenceRepository) GetReference(ctx context.Context, tier string) (*stats.RankReference, error) {
	reference, ok := stats.LookupReference(tier)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, tier)
	}
	return &reference, nil
}
