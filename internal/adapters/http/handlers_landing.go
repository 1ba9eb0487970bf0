package web

import (
	"errors"
	"net/http"

	"padelcygnus/internal/application/orchestrators"
	"padelcygnus/internal/application/projections"
	"padelcygnus/internal/domain/chat"
	"padelcygnus/internal/domain/contact"
	"padelcygnus/internal/domain/plan"
)

// handleLanding renders GET /
func handleLanding(w http.ResponseWriter, r *http.Request) {
	content := projections.QueryLanding()
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, content)
		return
	}

	var transcript []chat.Message
	if convID, ok := conversationFromCookie(r); ok {
		msgs, err := projections.QueryChatTranscript(r.Context(), convID, 0, stores.ChatStore)
		if err != nil {
			internalError(w, err)
			return
		}
		transcript = msgs
	}

	sess, loggedIn := currentSession(r)
	data := map[string]any{
		"Landing":    content,
		"Transcript": transcript,
		"ChatOpen":   r.URL.Query().Get("chat") == "open",
		"Contact":    r.URL.Query().Get("contact"),
		"LoginError": r.URL.Query().Get("login") == "error",
	}
	if loggedIn {
		data["Dashboard"] = sess.Role.DashboardPath()
	}
	renderTemplate(w, r, "landing.html", data)
}

// handlePlan renders the confirmation dialog for GET /plans/{slug}
func handlePlan(w http.ResponseWriter, r *http.Request) {
	p, err := plan.Find(r.PathValue("slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	renderTemplate(w, r, "plan.html", map[string]any{"Plan": p})
}

// handlePlanConfirm handles POST /plans/{slug}/confirm
func handlePlanConfirm(w http.ResponseWriter, r *http.Request) {
	p, err := orchestrators.ExecuteConfirmPlan(r.Context(), r.PathValue("slug"))
	if errors.Is(err, plan.ErrUnknownPlan) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, p)
		return
	}
	http.Redirect(w, r, "/#pricing", http.StatusSeeOther)
}

// handleAbout renders the "Saber Más" dialog for GET /about
func handleAbout(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "about.html", map[string]any{"Landing": projections.QueryLanding()})
}

// handleContact handles POST /contact
func handleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	inquiry := contact.Inquiry{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	}
	deps := orchestrators.ContactDeps{
		Sender: emailSender,
		From:   appConfig.EmailFrom,
		Inbox:  appConfig.ContactEmail,
	}

	_, err := orchestrators.ExecuteSendContactInquiry(r.Context(), inquiry, deps)
	switch {
	case err == nil:
		redirectOrNoContent(w, r, "/?contact=sent#contact")
	case isValidationError(err):
		if wantsJSON(r) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		http.Redirect(w, r, "/?contact=invalid#contact", http.StatusSeeOther)
	default:
		internalError(w, err)
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		contact.ErrEmptyName, contact.ErrNameTooLong, contact.ErrInvalidEmail,
		contact.ErrEmptyMessage, contact.ErrMessageTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
