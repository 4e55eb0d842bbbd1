package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/plannerhq/backend/internal/domain"
)

// exportCSVHeaders defines the column names written as the first row of
// any CSV export.
var exportCSVHeaders = []string{
	"trip_id", "destination", "starts_at", "ends_at", "trip_confirmed",
	"participant_name", "participant_email", "participant_is_owner",
	"participant_confirmed",
}

// exportRowResponse is the JSON shape of one export row. Empty participant
// fields are omitted for trips with no participants.
type exportRowResponse struct {
	TripID               string `json:"trip_id"`
	Destination          string `json:"destination"`
	StartsAt             string `json:"starts_at"`
	EndsAt               string `json:"ends_at"`
	TripConfirmed        bool   `json:"trip_confirmed"`
	ParticipantName      string `json:"participant_name,omitempty"`
	ParticipantEmail     string `json:"participant_email,omitempty"`
	ParticipantIsOwner   bool   `json:"participant_is_owner"`
	ParticipantConfirmed bool   `json:"participant_confirmed"`
}

// handleExportTrips handles GET /trips/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) handleExportTrips(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSVExport(w, rows)
		return
	}

	out := make([]exportRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, exportRowResponse{
			TripID:               row.TripID,
			Destination:          row.Destination,
			StartsAt:             row.StartsAt,
			EndsAt:               row.EndsAt,
			TripConfirmed:        row.TripConfirmed,
			ParticipantName:      row.ParticipantName,
			ParticipantEmail:     row.ParticipantEmail,
			ParticipantIsOwner:   row.ParticipantIsOwner,
			ParticipantConfirmed: row.ParticipantConfirmed,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// writeCSVExport encodes the rows as CSV with a header line.
func writeCSVExport(w http.ResponseWriter, rows []domain.TripExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// Writes to a bytes.Buffer cannot fail.
	_ = cw.Write(exportCSVHeaders)
	for _, row := range rows {
		_ = cw.Write([]string{
			row.TripID,
			row.Destination,
			row.StartsAt,
			row.EndsAt,
			strconv.FormatBool(row.TripConfirmed),
			row.ParticipantName,
			row.ParticipantEmail,
			strconv.FormatBool(row.ParticipantIsOwner),
			strconv.FormatBool(row.ParticipantConfirmed),
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
