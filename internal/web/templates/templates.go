package templates

import (
	"embed"
	"html/template"
	"io"

	"github.com/nhce-portal/accounts/internal/model"
)

//go:embed *.html
var files embed.FS

var (
	homeTmpl   = parse("home.html")
	signInTmpl = parse("signin.html")
	signUpTmpl = parse("signup.html")
)

func parse(page string) *template.Template {
	return template.Must(template.ParseFS(files, "layout.html", page))
}

// PageData holds fields shared by all pages
type PageData struct {
	Title string
}

// HomeData is the home page model
type HomeData struct {
	PageData
	Session *model.SessionMarker
}

// SignInData is the sign-in page model
type SignInData struct {
	PageData
	Email   string
	Error   string
	Success string
}

// SignUpData is the sign-up page model
type SignUpData struct {
	PageData
	FullName    string
	Username    string
	Email       string
	Phone       string
	FieldErrors map[string]string
	Error       string
	Success     string
}

// Home renders the home page
func Home(w io.Writer, data HomeData) error {
	return homeTmpl.ExecuteTemplate(w, "layout", data)
}

// SignIn renders the sign-in page
func SignIn(w io.Writer, data SignInData) error {
	return signInTmpl.ExecuteTemplate(w, "layout", data)
}

// SignUp renders the sign-up page
func SignUp(w io.Writer, data SignUpData) error {
	return signUpTmpl.ExecuteTemplate(w, "layout", data)
}
