package store

import (
	"context"
	"fmt"

	"github.com/budgetd-dev/budgetd/internal/model"
)

// ListBudgets returns all budget lines ordered by due day.
func (s *Store) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	var budgets []model.Budget
	if err := s.db.WithContext(ctx).Order("due_day, id").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	return budgets, nil
}

// CreateBudget inserts a budget line.
func (s *Store) CreateBudget(ctx context.Context, b *model.Budget) error {
	if err := s.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}
	return nil
}
