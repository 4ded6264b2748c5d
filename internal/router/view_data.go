package router

import "paytrack/internal/auth"

const (
	pageDashboard = "dashboard"
	pageSignin    = "signin"
	pageSignup    = "signup"
	pageReceipt   = "receipt"
)

type viewBase struct {
	Error       string
	Notice      string
	CurrentPage string
	LoggedIn    bool
	Username    string
	Name        string
}

func newViewBase(session auth.Session, currentPage string) viewBase {
	return viewBase{
		CurrentPage: currentPage,
		LoggedIn:    session.ID != "",
		Username:    session.Username,
		Name:        session.Name,
	}
}
