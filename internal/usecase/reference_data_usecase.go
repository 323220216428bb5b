package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrRetentionConfigNotFound = errors.New("retention configuration not found")

var maxConfiguredAdminPercent = decimal.NewFromInt(50)

// IRetentionConfigUseCase administers what the platform withholds. id is either
// entities.DefaultRetentionConfigID or a contract id.
type IRetentionConfigUseCase interface {
	Get(ctx context.Context, id string) (entities.RetentionConfig, error)
	Update(ctx context.Context, cfg entities.RetentionConfig) (entities.RetentionConfig, error)
}

// ICorrectionIndexUseCase administers the IGPM/IPCA publications used for late fees.
type ICorrectionIndexUseCase interface {
	List(ctx context.Context, name entities.IndexName) ([]entities.CorrectionIndex, error)
	Upsert(ctx context.Context, idx entities.CorrectionIndex) (entities.CorrectionIndex, error)
}

type RetentionConfigUseCase struct {
	repo interfaces.IRetentionConfigRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IRetentionConfigUseCase = (*RetentionConfigUseCase)(nil)

func NewRetentionConfigUseCase(repo interfaces.IRetentionConfigRepository, logger *zap.Logger) *RetentionConfigUseCase {
	return &RetentionConfigUseCase{repo: repo, log: loggerOrNop(logger), now: time.Now}
}

func (u *RetentionConfigUseCase) Get(ctx context.Context, id string) (entities.RetentionConfig, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = entities.DefaultRetentionConfigID
	}
	cfg, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RetentionConfig{}, err
	}
	if cfg.ID == "" {
		return entities.RetentionConfig{}, ErrRetentionConfigNotFound
	}
	return cfg, nil
}

// Update validates and stores a configuration. Settlements already computed keep the
// values they were computed with.
func (u *RetentionConfigUseCase) Update(ctx context.Context, cfg entities.RetentionConfig) (entities.RetentionConfig, error) {
	cfg.ID = strings.TrimSpace(cfg.ID)
	if cfg.ID == "" {
		cfg.ID = entities.DefaultRetentionConfigID
	}
	var msgs []string
	if cfg.AdminPercent.IsNegative() || cfg.AdminPercent.GreaterThan(maxConfiguredAdminPercent) {
		msgs = append(msgs, "percentual_admin must be between 0 and 50")
	}
	if cfg.BoletoFee.IsNegative() {
		msgs = append(msgs, "taxa_boleto must not be negative")
	}
	if cfg.TransferFee.IsNegative() {
		msgs = append(msgs, "taxa_transferencia must not be negative")
	}
	if len(msgs) > 0 {
		return entities.RetentionConfig{}, billing.NewValidationError(msgs...)
	}
	cfg.AdminPercent = billing.RoundCents(cfg.AdminPercent)
	cfg.BoletoFee = billing.RoundCents(cfg.BoletoFee)
	cfg.TransferFee = billing.RoundCents(cfg.TransferFee)
	cfg.UpdatedAt = u.now().UTC()

	saved, err := u.repo.Put(ctx, cfg)
	if err != nil {
		u.log.Error("[retention][usecase] update failed", zap.String("id", cfg.ID), zap.Error(err))
		return entities.RetentionConfig{}, err
	}
	u.log.Info("[retention][usecase] updated",
		zap.String("id", saved.ID),
		zap.String("percentual_admin", saved.AdminPercent.String()),
		zap.String("taxa_boleto", saved.BoletoFee.StringFixed(2)),
		zap.String("taxa_transferencia", saved.TransferFee.StringFixed(2)),
		zap.Bool("active", saved.Active),
	)
	return saved, nil
}

type CorrectionIndexUseCase struct {
	repo interfaces.ICorrectionIndexRepository
	log  *zap.Logger
}

var _ ICorrectionIndexUseCase = (*CorrectionIndexUseCase)(nil)

func NewCorrectionIndexUseCase(repo interfaces.ICorrectionIndexRepository, logger *zap.Logger) *CorrectionIndexUseCase {
	return &CorrectionIndexUseCase{repo: repo, log: loggerOrNop(logger)}
}

// List returns the publications of one index, or of every index when name is empty,
// newest period first.
func (u *CorrectionIndexUseCase) List(ctx context.Context, name entities.IndexName) ([]entities.CorrectionIndex, error) {
	if name != "" && !name.IsValid() {
		return nil, billing.NewValidationError("nome must be IGPM or IPCA")
	}
	out, err := u.repo.List(ctx, name)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[j].Period.Before(out[i].Period)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (u *CorrectionIndexUseCase) Upsert(ctx context.Context, idx entities.CorrectionIndex) (entities.CorrectionIndex, error) {
	var msgs []string
	if !idx.Name.IsValid() {
		msgs = append(msgs, "nome must be IGPM or IPCA")
	}
	if !idx.Period.IsValid() {
		msgs = append(msgs, "mes/ano is invalid")
	}
	if idx.Percentage.LessThan(decimal.NewFromInt(-100)) || idx.Percentage.GreaterThan(decimal.NewFromInt(100)) {
		msgs = append(msgs, "percentual must be between -100 and 100")
	}
	if len(msgs) > 0 {
		return entities.CorrectionIndex{}, billing.NewValidationError(msgs...)
	}
	idx.Source = strings.TrimSpace(idx.Source)

	saved, err := u.repo.Put(ctx, idx)
	if err != nil {
		return entities.CorrectionIndex{}, err
	}
	u.log.Info("[index][usecase] upserted", zap.String("name", string(saved.Name)), zap.String("period", saved.Period.Key()), zap.String("percentage", saved.Percentage.String()))
	return saved, nil
}
