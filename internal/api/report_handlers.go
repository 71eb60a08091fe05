package api

import (
	"fmt"
	"net/http"
	"time"

	"classbook/internal/export"
	"classbook/internal/service"
)

func (s *HTTPServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	view, err := s.svc.Reports.Dashboard(r.Context(), s.currentUser(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *HTTPServer) handleProfileHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	history, err := s.svc.Reports.ProfileHistory(r.Context(), s.currentUser(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": history})
}

// handleExportBookings streams an xlsx snapshot of all reservations.
// Admin only.
func (s *HTTPServer) handleExportBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := service.RequireAdmin(s.currentUser(r)); err != nil {
		writeServiceError(w, err)
		return
	}

	bookings, err := s.store.GetAllBookings(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rooms, err := s.store.GetAllRooms(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	f, err := export.BookingsWorkbook(bookings, rooms)
	if err != nil {
		s.logger.Error().Err(err).Msg("export build failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer f.Close()

	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	if err := f.Write(w); err != nil {
		s.logger.Error().Err(err).Msg("export write failed")
	}
}
