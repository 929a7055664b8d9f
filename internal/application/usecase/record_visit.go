package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/domain/url"
	"github.com/bnema/bmb/internal/logging"
)

// RecordVisitUseCase stores committed addresses in the profile history.
type RecordVisitUseCase struct {
	repo port.HistoryRepository
}

// NewRecordVisitUseCase creates a new RecordVisitUseCase.
func NewRecordVisitUseCase(repo port.HistoryRepository) *RecordVisitUseCase {
	return &RecordVisitUseCase{repo: repo}
}

// Execute records a visit to address. Blank addresses are ignored.
func (u *RecordVisitUseCase) Execute(ctx context.Context, address, title string) error {
	if u == nil || u.repo == nil || url.IsBlank(address) {
		return nil
	}

	if err := u.repo.Record(ctx, address, title); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}

	logging.FromContext(ctx).Trace().
		Str("url", logging.TruncateURL(address, 80)).
		Msg("visit recorded")
	return nil
}

// UpdateTitle attaches a page title to an already recorded address.
func (u *RecordVisitUseCase) UpdateTitle(ctx context.Context, address, title string) error {
	if u == nil || u.repo == nil || url.IsBlank(address) || title == "" {
		return nil
	}
	if err := u.repo.UpdateTitle(ctx, address, title); err != nil {
		return fmt.Errorf("update history title: %w", err)
	}
	return nil
}
