package web

import (
	"errors"
	"net/http"
	"time"

	"padelcygnus/internal/application/orchestrators"
	"padelcygnus/internal/application/projections"
	"padelcygnus/internal/domain/settings"
)

const adminDashboard = "/admin/dashboard"

// adminTabURL returns the dashboard URL with tab selected.
func adminTabURL(tab string) string {
	if tab == projections.TabOverview {
		return adminDashboard
	}
	return adminDashboard + "?tab=" + tab
}

// handleAdminDashboard renders GET /admin/dashboard
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	result, err := projections.QueryAdminDashboard(r.Context(), projections.AdminDashboardQuery{
		WorkspaceID:   sess.WorkspaceID,
		Tab:           r.URL.Query().Get("tab"),
		BookingStatus: r.URL.Query().Get("status"),
	}, projections.AdminDashboardDeps{
		BookingStore:      stores.BookingStore,
		MemberStore:       stores.MemberStore,
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
	renderTemplate(w, r, "admin_dashboard.html", map[string]any{
		"Dashboard": result,
		"Tabs":      projections.AdminTabs,
		"Saved":     r.URL.Query().Get("saved") == "1",
	})
}

func bookingDeps() orchestrators.BookingDeps {
	return orchestrators.BookingDeps{BookingStore: stores.BookingStore, GenerateID: generateID}
}

// handleApproveBooking handles POST /admin/bookings/{id}/approve
func handleApproveBooking(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	ref := orchestrators.BookingRef{WorkspaceID: sess.WorkspaceID, BookingID: r.PathValue("id")}
	if err := orchestrators.ExecuteApproveBooking(r.Context(), ref, bookingDeps()); err != nil {
		internalError(w, err)
		return
	}
	redirectOrNoContent(w, r, adminTabURL(projections.TabBookings))
}

// handleRejectBooking handles POST /admin/bookings/{id}/reject
func handleRejectBooking(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	ref := orchestrators.BookingRef{WorkspaceID: sess.WorkspaceID, BookingID: r.PathValue("id")}
	if err := orchestrators.ExecuteRejectBooking(r.Context(), ref, bookingDeps()); err != nil {
		internalError(w, err)
		return
	}
	redirectOrNoContent(w, r, adminTabURL(projections.TabBookings))
}

// handleAdminBookingDetail renders GET /admin/bookings/{id}
func handleAdminBookingDetail(w http.ResponseWriter, r *http.Request) {
	renderBookingDetail(w, r, adminTabURL(projections.TabBookings))
}

func renderBookingDetail(w http.ResponseWriter, r *http.Request, back string) {
	sess, _ := currentSession(r)
	b, err := projections.QueryBookingDetail(r.Context(), sess.WorkspaceID, r.PathValue("id"), stores.BookingStore)
	if errors.Is(err, projections.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, b)
		return
	}
	renderTemplate(w, r, "booking_detail.html", map[string]any{"Booking": b, "Back": back, "Admin": sess.IsAdmin()})
}

func memberDeps() orchestrators.MemberDeps {
	return orchestrators.MemberDeps{MemberStore: stores.MemberStore, GenerateID: generateID}
}

// handleAddMember handles POST /admin/members. The dialog input is stored as submitted.
func handleAddMember(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	m, err := orchestrators.ExecuteAddMember(r.Context(), orchestrators.AddMemberInput{
		WorkspaceID: sess.WorkspaceID,
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
	}, memberDeps())
	if err != nil {
		internalError(w, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusCreated, m)
		return
	}
	http.Redirect(w, r, adminTabURL(projections.TabMembers), http.StatusSeeOther)
}

// handleMemberDetail renders GET /admin/members/{id}
func handleMemberDetail(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	m, err := projections.QueryMemberDetail(r.Context(), sess.WorkspaceID, r.PathValue("id"), stores.MemberStore)
	if errors.Is(err, projections.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, m)
		return
	}
	renderTemplate(w, r, "member_detail.html", map[string]any{"Member": m, "Back": adminTabURL(projections.TabMembers)})
}

// handleDeleteMember handles POST /admin/members/{id}/delete
func handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	if err := orchestrators.ExecuteDeleteMember(r.Context(), sess.WorkspaceID, r.PathValue("id"), memberDeps()); err != nil {
		internalError(w, err)
		return
	}
	redirectOrNoContent(w, r, adminTabURL(projections.TabMembers))
}

// handleAdminTournamentDetail renders GET /admin/tournaments/{id}
func handleAdminTournamentDetail(w http.ResponseWriter, r *http.Request) {
	renderTournamentDetail(w, r, adminTabURL(projections.TabTournaments))
}

func renderTournamentDetail(w http.ResponseWriter, r *http.Request, back string) {
	sess, _ := currentSession(r)
	t, err := projections.QueryTournamentDetail(r.Context(), sess.WorkspaceID, r.PathValue("id"), stores.TournamentStore)
	if errors.Is(err, projections.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, t)
		return
	}
	renderTemplate(w, r, "tournament_detail.html", map[string]any{"Tournament": t, "Back": back, "Admin": sess.IsAdmin()})
}

// handleDeleteTournament handles POST /admin/tournaments/{id}/delete
func handleDeleteTournament(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	deps := orchestrators.TournamentDeps{TournamentStore: stores.TournamentStore}
	if err := orchestrators.ExecuteDeleteTournament(r.Context(), sess.WorkspaceID, r.PathValue("id"), deps); err != nil {
		internalError(w, err)
		return
	}
	redirectOrNoContent(w, r, adminTabURL(projections.TabTournaments))
}

// handleDismissNotification handles the dismiss button on either dashboard.
func handleDismissNotification(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	if err := orchestrators.ExecuteDismissNotification(r.Context(), sess.WorkspaceID, r.PathValue("id"), stores.NotificationStore); err != nil {
		internalError(w, err)
		return
	}
	target := sess.Role.DashboardPath()
	if sess.IsAdmin() {
		target = adminTabURL(projections.TabNotifications)
	}
	redirectOrNoContent(w, r, target)
}

// handleSaveSettings handles POST /admin/settings. The values are logged, not stored.
func handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	orchestrators.ExecuteSaveSettings(r.Context(), sess.WorkspaceID, settings.Settings{
		ClubName:  r.FormValue("clubName"),
		ClubEmail: r.FormValue("clubEmail"),
	})
	redirectOrNoContent(w, r, adminDashboard+"?tab="+projections.TabSettings+"&saved=1")
}

// handleResetWorkspace restores the session's workspace to its seed.
func handleResetWorkspace(w http.ResponseWriter, r *http.Request) {
	sess, _ := currentSession(r)
	input := orchestrators.SeedWorkspaceInput{WorkspaceID: sess.WorkspaceID, Kind: sess.Role}
	if _, err := orchestrators.ExecuteResetWorkspace(r.Context(), input, seedDeps()); err != nil {
		internalError(w, err)
		return
	}
	redirectOrNoContent(w, r, sess.Role.DashboardPath())
}

// handlePerf serves GET /admin/perf: request and query timings for the last hour.
func handlePerf(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, perfCollector.Snapshot(timeNow().Add(-time.Hour), 10))
}
