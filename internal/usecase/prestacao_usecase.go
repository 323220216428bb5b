package usecase

import (
	"context"
	"strings"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IPrestacaoUseCase computes move-in/move-out statements. Nothing is persisted.
type IPrestacaoUseCase interface {
	Calculate(ctx context.Context, in billing.PrestacaoInput) (billing.PrestacaoResult, error)
}

type PrestacaoUseCase struct {
	contracts interfaces.IContractRepository
	log       *zap.Logger
}

var _ IPrestacaoUseCase = (*PrestacaoUseCase)(nil)

// NewPrestacaoUseCase builds the calculator. With a nil contract repository the
// contract id is only checked for presence.
func NewPrestacaoUseCase(contracts interfaces.IContractRepository, logger *zap.Logger) *PrestacaoUseCase {
	return &PrestacaoUseCase{contracts: contracts, log: loggerOrNop(logger)}
}

func (u *PrestacaoUseCase) Calculate(ctx context.Context, in billing.PrestacaoInput) (billing.PrestacaoResult, error) {
	res, err := billing.CalculatePrestacao(in)
	if err != nil {
		return billing.PrestacaoResult{}, err
	}
	if u.contracts != nil {
		c, err := u.contracts.GetByID(ctx, strings.TrimSpace(in.ContractID))
		if err != nil {
			return billing.PrestacaoResult{}, err
		}
		if c.ID == "" {
			return billing.PrestacaoResult{}, ErrContractNotFound
		}
	}
	u.log.Info("[prestacao][usecase] calculated",
		zap.String("contract_id", in.ContractID),
		zap.String("type", string(in.Type)),
		zap.Int("months", len(res.Lines)),
		zap.String("total", res.Total.StringFixed(2)),
	)
	return res, nil
}
