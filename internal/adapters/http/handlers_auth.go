package web

import (
	"errors"
	"log/slog"
	"net/http"

	"padelcygnus/internal/adapters/http/middleware"
	"padelcygnus/internal/application/orchestrators"
	"padelcygnus/internal/config"
	"padelcygnus/internal/domain/role"
)

// startSession seeds a fresh workspace for r and sets the session cookie.
// Any session the browser already had is ended first.
func startSession(w http.ResponseWriter, r *http.Request, email string, kind role.Role) error {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		sessions.Delete(cookie.Value)
	}

	ws, err := orchestrators.ExecuteSeedWorkspace(r.Context(), orchestrators.SeedWorkspaceInput{Kind: kind}, seedDeps())
	if err != nil {
		return err
	}
	token, err := sessions.Create(email, kind, ws.ID)
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(w, token, sessions.TTL())
	return nil
}

func seedDeps() orchestrators.SeedWorkspaceDeps {
	return orchestrators.SeedWorkspaceDeps{
		WorkspaceStore:    stores.WorkspaceStore,
		BookingStore:      stores.BookingStore,
		MemberStore:       stores.MemberStore,
		TournamentStore:   stores.TournamentStore,
		NotificationStore: stores.NotificationStore,
		GenerateID:        generateID,
		Now:               timeNow,
	}
}

// login runs the credential check and starts the session. On success it
// redirects to the role's dashboard.
func login(w http.ResponseWriter, r *http.Request, mode orchestrators.LoginMode) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Mode:     mode,
	}, orchestrators.LoginDeps{Authenticator: authenticator})
	if err != nil {
		return err
	}
	if err := startSession(w, r, result.Email, result.Role); err != nil {
		return err
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]string{"role": result.Role.String(), "redirect": result.Role.DashboardPath()})
		return nil
	}
	http.Redirect(w, r, result.Role.DashboardPath(), http.StatusSeeOther)
	return nil
}

// handleLandingLogin handles POST /login from the landing dialog.
// The admin pair opens the admin dashboard; any other pair opens the member dashboard.
func handleLandingLogin(w http.ResponseWriter, r *http.Request) {
	err := login(w, r, orchestrators.LoginModeOpen)
	if errors.Is(err, orchestrators.ErrInvalidCredentials) {
		if wantsJSON(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}
		http.Redirect(w, r, "/?login=error#login", http.StatusSeeOther)
		return
	}
	if err != nil {
		internalError(w, err)
	}
}

// handleSignupForm renders GET /signup
func handleSignupForm(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "signup.html", map[string]any{"Error": "", "Name": "", "Email": ""})
}

// handleSignup handles POST /signup. Sign-up always opens a member session.
func handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	input := orchestrators.SignUpInput{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	result, err := orchestrators.ExecuteSignUp(r.Context(), input)
	if errors.Is(err, orchestrators.ErrIncompleteSignUp) {
		renderTemplateStatus(w, r, http.StatusBadRequest, "signup.html", map[string]any{
			"Error": err.Error(),
			"Name":  input.Name,
			"Email": input.Email,
		})
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	if err := startSession(w, r, result.Email, result.Role); err != nil {
		internalError(w, err)
		return
	}
	redirectOrNoContent(w, r, result.Role.DashboardPath())
}

// handleLogout handles POST /logout. The session's workspace is dropped.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if sess, ok := currentSession(r); ok && sess.IsAdmin() {
		target = role.Admin.LoginPath()
	}
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	redirectOrNoContent(w, r, target)
}

// handleAdminLoginForm renders GET /admin/login
func handleAdminLoginForm(w http.ResponseWriter, r *http.Request) {
	if sess, ok := currentSession(r); ok && sess.IsAdmin() {
		http.Redirect(w, r, role.Admin.DashboardPath(), http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "admin_login.html", adminLoginData(""))
}

// handleAdminLogin handles POST /admin/login. Only the admin pair is accepted.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	err := login(w, r, orchestrators.LoginModeAdminOnly)
	if errors.Is(err, orchestrators.ErrInvalidCredentials) {
		if wantsJSON(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}
		data := adminLoginData(err.Error())
		data["Email"] = r.FormValue("email")
		renderTemplateStatus(w, r, http.StatusUnauthorized, "admin_login.html", data)
		return
	}
	if err != nil {
		internalError(w, err)
	}
}

func adminLoginData(errMsg string) map[string]any {
	data := map[string]any{"Error": errMsg, "Email": ""}
	// The demo credential is advertised only while it is the built-in default.
	if appConfig.AdminPasswordHash == "" && appConfig.AdminPassword == config.DefaultAdminPassword {
		data["DemoEmail"] = appConfig.AdminEmail
		data["DemoPassword"] = appConfig.AdminPassword
	}
	return data
}

// handleMemberLoginForm renders GET /member/login
func handleMemberLoginForm(w http.ResponseWriter, r *http.Request) {
	if sess, ok := currentSession(r); ok {
		http.Redirect(w, r, sess.Role.DashboardPath(), http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "member_login.html", map[string]any{"Error": "", "Email": ""})
}

// handleMemberLogin handles POST /member/login with the landing semantics.
func handleMemberLogin(w http.ResponseWriter, r *http.Request) {
	err := login(w, r, orchestrators.LoginModeOpen)
	if errors.Is(err, orchestrators.ErrInvalidCredentials) {
		slog.Debug("auth_event", "event", "member_login_rejected")
		if wantsJSON(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}
		renderTemplateStatus(w, r, http.StatusUnauthorized, "member_login.html", map[string]any{
			"Error": err.Error(),
			"Email": r.FormValue("email"),
		})
		return
	}
	if err != nil {
		internalError(w, err)
	}
}
