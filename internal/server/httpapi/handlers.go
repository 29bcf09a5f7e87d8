package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes the public form of err. Store failures are 503.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(common.Public(err), common.ErrInvalidOrExpired):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": common.ErrInvalidOrExpired.Error()})
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": common.ErrUnavailable.Error()})
	}
}

// sessionToken reads the cookie first, then a bearer header.
func (s *Server) sessionToken(r *http.Request) string {
	if c, err := r.Cookie(s.cookie.Name); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func metadataOf(r *http.Request) sessions.Metadata {
	return sessions.Metadata{UserAgent: r.UserAgent(), Origin: r.Header.Get("Origin")}
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok\n"))
}

// check is the forward-auth endpoint. 200 with identity headers when the
// session is valid, 401 otherwise.
func (s *Server) check(w http.ResponseWriter, r *http.Request) {
	token := s.sessionToken(r)
	if token == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	v, err := s.sessions.Validate(r.Context(), token)
	if err != nil {
		if errors.Is(common.Public(err), common.ErrInvalidOrExpired) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.logger.Error(r.Context(), "session check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	p, err := s.svc.Account.Me(r.Context(), v.UserID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	h := w.Header()
	h.Set(HeaderUser, p.Handle)
	h.Set(HeaderUserID, p.UserID)
	h.Set(HeaderDownload, strconv.FormatBool(p.CanDownload))
	h.Set(HeaderAdmin, strconv.FormatBool(p.IsAdmin))
	h.Set(HeaderState, v.State.String())
	w.WriteHeader(http.StatusOK)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Terminate(r.Context(), s.sessionToken(r)); err != nil {
		s.fail(w, r, err)
		return
	}
	s.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// verify redeems the registration token and hands back the continuation the
// client uses to choose a method.
func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	cont, err := s.svc.Registration.Verify(r.Context(), r.FormValue("token"))
	if err != nil {
		if errors.Is(err, common.ErrHandleTaken) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"continuation": cont})
}

// recoverLink redeems the magic link: the user is signed in by cookie and gets
// a continuation to enroll a new credential.
func (s *Server) recoverLink(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.Recovery.RedeemLink(r.Context(), r.FormValue("token"), metadataOf(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.setSessionCookie(w, res.SessionToken)
	writeJSON(w, http.StatusOK, map[string]string{"user_id": res.UserID, "continuation": res.Continuation})
}
