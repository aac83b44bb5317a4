package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/haulledger/backend/internal/domain"
)

// mileageSource is the part of MileageService the exporter needs.
type mileageSource interface {
	TripMileage(ctx context.Context, userID, tripID uuid.UUID) ([]domain.StateMileage, error)
	AllTime(ctx context.Context, userID uuid.UUID) ([]domain.StateMileage, error)
}

// ExportService flattens mileage summaries into rows for CSV or JSON export.
type ExportService struct {
	mileage mileageSource
}

// NewExportService constructs an ExportService over the given mileage source.
func NewExportService(m mileageSource) *ExportService {
	return &ExportService{mileage: m}
}

// MileageRows returns one row per state. With a nil tripID the rows cover all
// completed trips and carry domain.AllTripsExportID as their trip id.
// Always returns a non-nil slice.
func (s *ExportService) MileageRows(ctx context.Context, userID uuid.UUID, tripID *uuid.UUID) ([]domain.MileageExportRow, error) {
	var (
		entries []domain.StateMileage
		label   string
		err     error
	)
	if tripID != nil {
		entries, err = s.mileage.TripMileage(ctx, userID, *tripID)
		label = tripID.String()
	} else {
		entries, err = s.mileage.AllTime(ctx, userID)
		label = domain.AllTripsExportID
	}
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.MileageRows: %w", err)
	}

	rows := make([]domain.MileageExportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, domain.MileageExportRow{TripID: label, State: e.State, StateName: e.StateName, Miles: e.Miles})
	}
	return rows, nil
}
