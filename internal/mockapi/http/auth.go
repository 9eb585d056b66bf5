package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/service"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
	"github.com/aussiebroadwan/riskconsole/pkg/httpx"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
)

// RefreshCookie is the httpOnly cookie carrying the opaque refresh token.
const RefreshCookie = "refresh_token"

type AuthHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
	CookieSecure bool
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Checks identity and password, returns an access token and sets the refresh_token cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		consoleapi.LoginRequest	true	"Credentials"
//	@Success		200		{object}	consoleapi.Envelope{data=consoleapi.AuthResult}
//	@Failure		401		{object}	consoleapi.Envelope	"Invalid identity or password"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req consoleapi.LoginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.UserService.Authenticate(r.Context(), req.Identity, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.startSession(w, r, u, "login succeeded")
}

// HandleRegister godoc
//
//	@Summary		Register an operator
//	@Description	Creates an admin operator and logs it in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		consoleapi.RegisterRequest	true	"New operator"
//	@Success		200		{object}	consoleapi.Envelope{data=consoleapi.AuthResult}
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req consoleapi.RegisterRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.UserService.Register(r.Context(), req.Identity, req.Password, req.DisplayName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	slogx.FromContext(r.Context()).Info("operator registered", "user_id", u.ID)
	h.startSession(w, r, u, "registered")
}

// HandleRefresh godoc
//
//	@Summary		Refresh the access token
//	@Description	Rotates the refresh_token cookie and returns a new access token.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	consoleapi.Envelope{data=consoleapi.AuthResult}
//	@Failure		401	{object}	consoleapi.Envelope	"Missing, expired or revoked refresh token"
//	@Router			/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var opaque string
	if c, err := r.Cookie(RefreshCookie); err == nil {
		opaque = c.Value
	}

	s, err := h.TokenService.Rotate(r.Context(), opaque)
	if err != nil {
		h.clearCookie(w)
		writeError(w, r, err)
		return
	}
	h.setCookie(w, s.RefreshToken, s.RefreshExpiresAt)
	writeOK(w, "refreshed", consoleapi.AuthResult{AccessToken: s.AccessToken, User: toUser(s.User)})
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Revokes the refresh token and clears its cookie. Always succeeds.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	consoleapi.Envelope
//	@Router			/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(RefreshCookie); err == nil {
		if err := h.TokenService.Revoke(r.Context(), c.Value); err != nil {
			slogx.FromContext(r.Context()).Warn("refresh revoke failed", "error", err)
		}
	}
	h.clearCookie(w)
	writeOK(w, "logged out", nil)
}

// HandleMe godoc
//
//	@Summary		Current operator
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	consoleapi.Envelope{data=consoleapi.User}
//	@Failure		401	{object}	consoleapi.Envelope
//	@Security		BearerAuth
//	@Router			/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.GetUserByID(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "", toUser(u))
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, u domain.User, msg string) {
	s, err := h.TokenService.Issue(r.Context(), u)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.setCookie(w, s.RefreshToken, s.RefreshExpiresAt)
	writeOK(w, msg, consoleapi.AuthResult{AccessToken: s.AccessToken, User: toUser(s.User)})
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(h.TokenService.RefreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
