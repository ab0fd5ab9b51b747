package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

// IncomeUseCase handles income business logic.
type IncomeUseCase struct {
	incomeRepo IncomeRepository
	idGen      IDGenerator
	clock      Clock
}

// NewIncomeUseCase creates a new IncomeUseCase.
func NewIncomeUseCase(incomeRepo IncomeRepository, idGen IDGenerator, clock Clock) *IncomeUseCase {
	return &IncomeUseCase{
		incomeRepo: incomeRepo,
		idGen:      idGen,
		clock:      clock,
	}
}

// GetCurrent returns the latest income, recording the default when none exists.
func (uc *IncomeUseCase) GetCurrent(ctx context.Context) (*domain.Income, error) {
	income, err := uc.incomeRepo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}

	if income != nil {
		return income, nil
	}

	return uc.create(ctx, domain.DefaultIncomeAmount())
}

// Update records a new current income.
func (uc *IncomeUseCase) Update(ctx context.Context, amount decimal.Decimal) (*domain.Income, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	return uc.create(ctx, amount)
}

func (uc *IncomeUseCase) create(ctx context.Context, amount decimal.Decimal) (*domain.Income, error) {
	income := &domain.Income{
		ID:        uc.idGen.Generate(),
		Amount:    amount,
		CreatedAt: uc.clock.Now().UTC(),
	}

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, err
	}

	return income, nil
}
