package store

import (
	"context"
	"fmt"

	"github.com/budgetd-dev/budgetd/internal/model"
)

// RecordUpload writes the audit record for one ingestion run.
func (s *Store) RecordUpload(ctx context.Context, u *model.Upload) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("recording upload: %w", err)
	}
	return nil
}

// ListUploads returns ingestion runs, newest first.
func (s *Store) ListUploads(ctx context.Context) ([]model.Upload, error) {
	var uploads []model.Upload
	if err := s.db.WithContext(ctx).Order("id desc").Find(&uploads).Error; err != nil {
		return nil, fmt.Errorf("listing uploads: %w", err)
	}
	return uploads, nil
}
