package usecase

import (
	"context"

	"github.com/iho/gobudget/internal/domain"
)

// AllocationUseCase handles allocation business logic.
type AllocationUseCase struct {
	allocationRepo AllocationRepository
	idGen          IDGenerator
	clock          Clock
}

// NewAllocationUseCase creates a new AllocationUseCase.
func NewAllocationUseCase(allocationRepo AllocationRepository, idGen IDGenerator, clock Clock) *AllocationUseCase {
	return &AllocationUseCase{
		allocationRepo: allocationRepo,
		idGen:          idGen,
		clock:          clock,
	}
}

// UpdateAllocationInput represents input for changing the allocation.
type UpdateAllocationInput struct {
	Savings int
	Needs   int
	Wants   int
}

// GetCurrent returns the latest allocation, recording the default when none exists.
func (uc *AllocationUseCase) GetCurrent(ctx context.Context) (*domain.Allocation, error) {
	allocation, err := uc.allocationRepo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}

	if allocation != nil {
		return allocation, nil
	}

	return uc.create(ctx, domain.DefaultAllocation())
}

// Update records a new allocation. Every bucket must be set and the
// percentages must sum to 100.
func (uc *AllocationUseCase) Update(ctx context.Context, input UpdateAllocationInput) (*domain.Allocation, error) {
	allocation := domain.Allocation{
		Savings: input.Savings,
		Needs:   input.Needs,
		Wants:   input.Wants,
	}

	if err := allocation.Validate(); err != nil {
		return nil, err
	}

	return uc.create(ctx, allocation)
}

func (uc *AllocationUseCase) create(ctx context.Context, allocation domain.Allocation) (*domain.Allocation, error) {
	allocation.ID = uc.idGen.Generate()
	allocation.CreatedAt = uc.clock.Now().UTC()

	if err := uc.allocationRepo.Create(ctx, &allocation); err != nil {
		return nil, err
	}

	return &allocation, nil
}
