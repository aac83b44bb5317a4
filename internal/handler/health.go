package handler

import (
	"context"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/handler/gen"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// ListJurisdictions handles GET /jurisdictions.
func (s *Server) ListJurisdictions(ctx context.Context, _ gen.ListJurisdictionsRequestObject) (gen.ListJurisdictionsResponseObject, error) {
	all := domain.Jurisdictions()
	out := make(gen.ListJurisdictions200JSONResponse, len(all))
	for i, j := range all {
		out[i] = gen.Jurisdiction{Code: j.Code, Name: j.Name, Country: j.Country}
	}
	return out, nil
}
