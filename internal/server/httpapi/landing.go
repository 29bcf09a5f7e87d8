package httpapi

import (
	"html/template"
	"net/http"
)

type page struct {
	Title  string
	Prompt string
	Action string
	Token  string
}

var (
	verifyPage  = page{Title: "Confirm your address", Prompt: "Continue to set up your sign-in method.", Action: "/auth/verify"}
	recoverPage = page{Title: "Sign in", Prompt: "Continue to sign in and set up a new authenticator.", Action: "/auth/recover"}
)

var landingTmpl = template.Must(template.New("landing").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta name="robots" content="noindex">
<title>{{.Title}}</title>
</head>
<body>
<form method="post" action="{{.Action}}">
<input type="hidden" name="token" value="{{.Token}}">
<p>{{.Prompt}}</p>
<button type="submit">Continue</button>
</form>
</body>
</html>
`))

// landing renders the confirmation form for an emailed link. It never
// touches the token store.
func (s *Server) landing(p page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Token = r.URL.Query().Get("token")
		if p.Token == "" {
			http.Error(w, "missing token", http.StatusBadRequest)
			return
		}

		h := w.Header()
		h.Set("Content-Type", "text/html; charset=utf-8")
		h.Set("Cache-Control", "no-store")
		h.Set("Referrer-Policy", "no-referrer")
		if err := landingTmpl.Execute(w, p); err != nil {
			s.logger.Error(r.Context(), "render landing", "error", err)
		}
	}
}
