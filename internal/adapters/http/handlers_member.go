package web

import (
	"errors"
	"net/http"
	"strings"

	"padelcygnus/internal/application/orchestrators"
	"padelcygnus/internal/application/projections"
	"padelcygnus/internal/domain/profile"
)

const memberDashboard = "/member/dashboard"

// handleMemberDashboard renders GET /member/dashboard
func handleMemberDashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	result, err := projections.QueryMemberDashboard(r.Context(), projections.MemberDashboardQuery{
		WorkspaceID: sess.WorkspaceID,
	}, projections.MemberDashboardDeps{
		BookingStore:      stores.BookingStore,
		TournamentStore:   stores.TournamentStore,
		NotificationStore: stores.NotificationStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, result)
		return
	}
	renderTemplate(w, r, "member_dashboard.html", map[string]any{
		"Dashboard":    result,
		"BookingError": r.URL.Query().Get("booking") == "invalid",
		"ProfileSaved": r.URL.Query().Get("profile") == "saved",
	})
}

// handleCreateBooking handles POST /member/bookings from the booking dialog.
func handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	input := orchestrators.CreateBookingInput{
		WorkspaceID: sess.WorkspaceID,
		Court:       r.FormValue("court"),
		Time:        r.FormValue("time"),
	}
	// The dialog submits one radio value "Pista N|HH:MM".
	if slot := r.FormValue("slot"); input.Court == "" && slot != "" {
		input.Court, input.Time, _ = strings.Cut(slot, "|")
	}
	b, err := orchestrators.ExecuteCreateBooking(r.Context(), input, bookingDeps())
	if errors.Is(err, orchestrators.ErrUnknownCourt) || errors.Is(err, orchestrators.ErrUnknownSlot) {
		if wantsJSON(r) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		http.Redirect(w, r, memberDashboard+"?booking=invalid", http.StatusSeeOther)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusCreated, b)
		return
	}
	http.Redirect(w, r, memberDashboard, http.StatusSeeOther)
}

// handleMemberBookingDetail renders GET /member/bookings/{id}
func handleMemberBookingDetail(w http.ResponseWriter, r *http.Request) {
	renderBookingDetail(w, r, memberDashboard)
}

// handleCancelBooking handles POST /member/bookings/{id}/cancel
func handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	ref := orchestrators.BookingRef{WorkspaceID: sess.WorkspaceID, BookingID: r.PathValue("id")}
	if err := orchestrators.ExecuteCancelBooking(r.Context(), ref, bookingDeps()); err != nil {
		internalError(w, err)
		return
	}
	redirectOrNoContent(w, r, memberDashboard)
}

// handleMemberTournamentDetail renders GET /member/tournaments/{id}
func handleMemberTournamentDetail(w http.ResponseWriter, r *http.Request) {
	renderTournamentDetail(w, r, memberDashboard)
}

// handleRegisterTournament handles POST /member/tournaments/{id}/register.
// Every press adds one participant.
func handleRegisterTournament(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	deps := orchestrators.TournamentDeps{TournamentStore: stores.TournamentStore}
	t, err := orchestrators.ExecuteRegisterForTournament(r.Context(), sess.WorkspaceID, r.PathValue("id"), deps)
	if err != nil {
		internalError(w, err)
		return
	}
	if wantsJSON(r) {
		if t.ID == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, t)
		return
	}
	http.Redirect(w, r, memberDashboard, http.StatusSeeOther)
}

// handleSaveProfile handles POST /member/profile. The edit is logged, not stored.
func handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	orchestrators.ExecuteSaveProfile(r.Context(), sess.WorkspaceID, profile.Profile{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Phone: r.FormValue("phone"),
	})
	redirectOrNoContent(w, r, memberDashboard+"?profile=saved")
}
