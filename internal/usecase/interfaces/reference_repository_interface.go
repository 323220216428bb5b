package interfaces

import (
	"context"

	"repasse_imoveis/internal/domain/entities"
)

// Reference data is registered by the surrounding application. The billing service
// reads contracts and owners, and administers retention settings and index tables.
//
// Get methods return a zero value (empty ID or Name) when nothing is stored.

type IContractRepository interface {
	GetByID(ctx context.Context, id string) (entities.Contract, error)
}

type IOwnerRepository interface {
	ListByContractID(ctx context.Context, contractID string) ([]entities.Owner, error)
}

type IRetentionConfigRepository interface {
	GetByID(ctx context.Context, id string) (entities.RetentionConfig, error)
	Put(ctx context.Context, cfg entities.RetentionConfig) (entities.RetentionConfig, error)
}

type ICorrectionIndexRepository interface {
	Get(ctx context.Context, name entities.IndexName, period entities.Period) (entities.CorrectionIndex, error)
	List(ctx context.Context, name entities.IndexName) ([]entities.CorrectionIndex, error)
	Put(ctx context.Context, idx entities.CorrectionIndex) (entities.CorrectionIndex, error)
}
