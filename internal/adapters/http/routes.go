package web

import (
	"net/http"

	"padelcygnus/internal/adapters/http/middleware"
	"padelcygnus/internal/domain/role"
)

// registerRoutes binds every route. Dashboard routes sit behind RequireRole.
func registerRoutes(mux *http.ServeMux) {
	admin := middleware.RequireRole(role.Admin)
	member := middleware.RequireRole(role.Member)

	// Landing
	mux.HandleFunc("GET /{$}", handleLanding)
	mux.HandleFunc("GET /plans/{slug}", handlePlan)
	mux.HandleFunc("POST /plans/{slug}/confirm", handlePlanConfirm)
	mux.HandleFunc("GET /about", handleAbout)
	mux.HandleFunc("POST /contact", handleContact)

	// Session
	mux.HandleFunc("POST /login", handleLandingLogin)
	mux.HandleFunc("GET /signup", handleSignupForm)
	mux.HandleFunc("POST /signup", handleSignup)
	mux.HandleFunc("POST /logout", handleLogout)
	mux.HandleFunc("GET /admin/login", handleAdminLoginForm)
	mux.HandleFunc("POST /admin/login", handleAdminLogin)
	mux.HandleFunc("GET /member/login", handleMemberLoginForm)
	mux.HandleFunc("POST /member/login", handleMemberLogin)

	// Admin dashboard
	mux.Handle("GET /admin/dashboard", admin(http.HandlerFunc(handleAdminDashboard)))
	mux.Handle("GET /admin/bookings/{id}", admin(http.HandlerFunc(handleAdminBookingDetail)))
	mux.Handle("POST /admin/bookings/{id}/approve", admin(http.HandlerFunc(handleApproveBooking)))
	mux.Handle("POST /admin/bookings/{id}/reject", admin(http.HandlerFunc(handleRejectBooking)))
	mux.Handle("POST /admin/members", admin(http.HandlerFunc(handleAddMember)))
	mux.Handle("GET /admin/members/{id}", admin(http.HandlerFunc(handleMemberDetail)))
	mux.Handle("POST /admin/members/{id}/delete", admin(http.HandlerFunc(handleDeleteMember)))
	mux.Handle("GET /admin/tournaments/{id}", admin(http.HandlerFunc(handleAdminTournamentDetail)))
	mux.Handle("POST /admin/tournaments/{id}/delete", admin(http.HandlerFunc(handleDeleteTournament)))
	mux.Handle("POST /admin/notifications/{id}/dismiss", admin(http.HandlerFunc(handleDismissNotification)))
	mux.Handle("POST /admin/settings", admin(http.HandlerFunc(handleSaveSettings)))
	mux.Handle("POST /admin/reset", admin(http.HandlerFunc(handleResetWorkspace)))
	mux.Handle("GET /admin/perf", admin(http.HandlerFunc(handlePerf)))

	// Member dashboard
	mux.Handle("GET /member/dashboard", member(http.HandlerFunc(handleMemberDashboard)))
	mux.Handle("POST /member/bookings", member(http.HandlerFunc(handleCreateBooking)))
	mux.Handle("GET /member/bookings/{id}", member(http.HandlerFunc(handleMemberBookingDetail)))
	mux.Handle("POST /member/bookings/{id}/cancel", member(http.HandlerFunc(handleCancelBooking)))
	mux.Handle("GET /member/tournaments/{id}", member(http.HandlerFunc(handleMemberTournamentDetail)))
	mux.Handle("POST /member/tournaments/{id}/register", member(http.HandlerFunc(handleRegisterTournament)))
	mux.Handle("POST /member/notifications/{id}/dismiss", member(http.HandlerFunc(handleDismissNotification)))
	mux.Handle("POST /member/profile", member(http.HandlerFunc(handleSaveProfile)))
	mux.Handle("POST /member/reset", member(http.HandlerFunc(handleResetWorkspace)))

	// Chat widget
	mux.HandleFunc("GET /chat/messages", handleChatTranscript)
	mux.HandleFunc("POST /chat/messages", handleChatSend)
	mux.HandleFunc("GET /chat/ws", handleChatSocket)
}
