package router

import (
	"errors"
	"net/http"
	"time"

	"paytrack/internal/auth"
)

const sessionCookieName = "paytrack_session"

type authHandler struct {
	router *router
}

func (a *authHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /signup", a.signupPage)
	mux.HandleFunc("POST /signup", a.signup)
	mux.HandleFunc("GET /signin", a.signinPage)
	mux.HandleFunc("POST /signin", a.signin)
	mux.HandleFunc("POST /signout", a.signout)
}

func (a *authHandler) signinPage(w http.ResponseWriter, _ *http.Request) {
	a.render(w, "pages/auth/signin.html", newViewBase(auth.Session{}, pageSignin))
}

func (a *authHandler) signin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := a.router.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			a.renderSigninError(w, "Invalid credentials. Use admin/admin or user/user.")
			return
		}
		a.router.logger.Error("Failed to authenticate", "error", err, "username", username)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	session, err := a.router.auth.CreateSession(r.Context(), user)
	if err != nil {
		a.router.logger.Error("Failed to create session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Expires:  time.Unix(session.ExpiresAt, 0),
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *authHandler) signupPage(w http.ResponseWriter, _ *http.Request) {
	a.render(w, "pages/auth/signup.html", newViewBase(auth.Session{}, pageSignup))
}

func (a *authHandler) signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	name := r.FormValue("name")

	err := a.router.auth.Register(r.Context(), username, password, name)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			a.renderSignupError(w, "Please fill all fields")
		case errors.Is(err, auth.ErrUsernameTaken):
			a.renderSignupError(w, "Username exists")
		default:
			a.router.logger.Error("Failed to register user", "error", err, "username", username)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	// Signup does not auto-login; back to the signin page.
	data := newViewBase(auth.Session{}, pageSignin)
	data.Notice = "Signup successful! Please login."
	a.render(w, "pages/auth/signin.html", data)
}

func (a *authHandler) signout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err == nil {
		if err = a.router.auth.DeleteSession(r.Context(), cookie.Value); err != nil {
			a.router.logger.Error("Failed to delete session", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	})

	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}

func (a *authHandler) renderSigninError(w http.ResponseWriter, errorMsg string) {
	data := newViewBase(auth.Session{}, pageSignin)
	data.Error = errorMsg
	a.render(w, "pages/auth/signin.html", data)
}

func (a *authHandler) renderSignupError(w http.ResponseWriter, errorMsg string) {
	data := newViewBase(auth.Session{}, pageSignup)
	data.Error = errorMsg
	a.render(w, "pages/auth/signup.html", data)
}

func (a *authHandler) render(w http.ResponseWriter, page string, data viewBase) {
	if err := a.router.templates.Render(w, page, data); err != nil {
		a.router.logger.Error("Failed to render template", "template", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
