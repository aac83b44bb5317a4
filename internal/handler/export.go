// Package handler: export.go implements GET /export/mileage.
// Returns one row per state for a trip or for all completed trips.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{"trip_id", "state", "state_name", "miles"}

// ExportMileage implements GET /export/mileage.
// Use ?trip_id= to export one trip and ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportMileage(ctx context.Context, req gen.ExportMileageRequestObject) (gen.ExportMileageResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.export.MileageRows(ctx, userID, req.Params.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ExportMileage404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	wantCSV := req.Params.Format != nil && *req.Params.Format == gen.Csv
	if wantCSV {
		return buildCSVResponse(rows)
	}
	return buildJSONResponse(rows), nil
}

// buildJSONResponse converts domain rows to the typed JSON response.
func buildJSONResponse(rows []domain.MileageExportRow) gen.ExportMileage200JSONResponse {
	out := make(gen.ExportMileage200JSONResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, gen.MileageExportRow{TripId: r.TripID, State: r.State, StateName: r.StateName, Miles: r.Miles})
	}
	return out
}

// buildCSVResponse encodes domain rows as CSV and wraps them in the streaming response type.
func buildCSVResponse(rows []domain.MileageExportRow) (gen.ExportMileage200TextcsvResponse, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(rows)+1)
	records = append(records, csvHeaders)
	for _, r := range rows {
		records = append(records, []string{r.TripID, r.State, r.StateName, strconv.FormatInt(r.Miles, 10)})
	}
	// WriteAll flushes and reports the first write error.
	if err := w.WriteAll(records); err != nil {
		return gen.ExportMileage200TextcsvResponse{}, err
	}

	return gen.ExportMileage200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}, nil
}
