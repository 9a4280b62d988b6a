package web

import (
	"embed"
	"html/template"
	"time"

	"github.com/Kamar-Folarin/commit-history-app/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const dateLayout = "Jan 2, 2006 15:04"

type textInput struct {
	Name  string
	Label string
	Type  string
	Value string
	Error string
}

type historyView struct {
	History    *models.CommitHistory
	RefreshURL string
	Loading    bool
	Failed     bool
}

func newHistoryView(history *models.CommitHistory, refresh string) historyView {
	return historyView{
		History:    history,
		RefreshURL: refresh,
		Loading:    !history.State.Settled(),
		Failed:     history.State == models.QueryError,
	}
}

type signupView struct {
	Form   models.SignupForm
	Errors map[string]string
	Notice string
}

func (v signupView) FieldError(name string) string {
	return v.Errors[name]
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func field(name, label, inputType, value, errMessage string) textInput {
	return textInput{Name: name, Label: label, Type: inputType, Value: value, Error: errMessage}
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"formatDate": formatDate,
		"field":      field,
	}).ParseFS(templateFS, "templates/*.html")
}
