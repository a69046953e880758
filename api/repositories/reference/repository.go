package repositories

import (
	"context"
	"errors"
	"fmt"
	"winalyze/pkg/database/models"
	"winalyze/pkg/messages"
	tiervalues "winalyze/pkg/riotvalues/tier"
	"winalyze/pkg/stats"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrReferenceNotFound is returned when a tier has no stored reference.
var ErrReferenceNotFound = errors.New(messages.ReferenceNotFound)

// Public Interface.
type ReferenceRepository interface {
	ListReferences(ctx context.Context) ([]stats.RankReference, error)
	GetReference(ctx context.Context, tier string) (*stats.RankReference, error)
}

// Reference repository backed by postgres.
type referenceRepository struct {
	db *gorm.DB
}

// Create a reference repository over the given pool.
func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

// ListReferences returns every stored tier, lowest first.
func (rr *referenceRepository) ListReferences(ctx context.Context) ([]stats.RankReference, error) {
	var rows []models.RankReference
	if err := rr.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	references := make([]stats.RankReference, len(rows))
	for i, row := range rows {
		references[i] = toRankReference(row)
	}
	return references, nil
}

// GetReference returns the stored reference of a single tier.
func (rr *referenceRepository) GetReference(ctx context.Context, tier string) (*stats.RankReference, error) {
	normalized, ok := tiervalues.NormalizeTier(tier)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, tier)
	}

	var row models.RankReference
	err := rr.db.WithContext(ctx).Where("tier = ?", normalized).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, normalized)
	}
	if err != nil {
		return nil, err
	}

	reference := toRankReference(row)
	return &reference, nil
}

// SeedReferences inserts the given references, keeping rows that already exist.
// Stored values can be tuned by hand without being overwritten on the next start.
func SeedReferences(ctx context.Context, db *gorm.DB, references []stats.RankReference) error {
	rows := make([]models.RankReference, 0, len(references))
	for _, reference := range references {
		rows = append(rows, models.RankReference{
			Tier:              reference.Tier,
			Position:          tiervalues.TierIndex(reference.Tier),
			KDA:               reference.KDA,
			CSPerMin:          reference.CSPerMin,
			VisionPerMin:      reference.VisionPerMin,
			ObjectivesPerGame: reference.ObjectivesPerGame,
		})
	}

	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tier"}},
		DoNothing: true,
	}).Create(&rows).Error
}

func toRankReference(row models.RankReference) stats.RankReference {
	return stats.RankReference{
		Tier:              row.Tier,
		KDA:               row.KDA,
		CSPerMin:          row.CSPerMin,
		VisionPerMin:      row.VisionPerMin,
		ObjectivesPerGame: row.ObjectivesPerGame,
	}
}
