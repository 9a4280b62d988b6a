package web

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/commit-history-app/internal/auth"
	"github.com/Kamar-Folarin/commit-history-app/internal/commits"
	"github.com/Kamar-Folarin/commit-history-app/internal/config"
	"github.com/Kamar-Folarin/commit-history-app/internal/errors"
	"github.com/Kamar-Folarin/commit-history-app/internal/models"
	"github.com/Kamar-Folarin/commit-history-app/internal/signup"
)

const (
	credentialKey   = "credential"
	pendingNotice   = "Your signup is already being processed"
	historyTemplate = "commit_history.html"
	signupTemplate  = "signup.html"
)

type Handler struct {
	history  commits.HistoryService
	accounts signup.AccountService
	query    config.QueryConfig
	cookie   config.CookieConfig
	logger   *logrus.Logger
}

func NewHandler(
	history commits.HistoryService,
	accounts signup.AccountService,
	queryCfg config.QueryConfig,
	cookieCfg config.CookieConfig,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		history:  history,
		accounts: accounts,
		query:    queryCfg,
		cookie:   cookieCfg,
		logger:   logger,
	}
}

// Credentials reads the token cookie into the request context
func (h *Handler) Credentials() gin.HandlerFunc {
	return func(c *gin.Context) {
		cred := auth.Credential{}
		if value, err := c.Cookie(h.cookie.Name); err == nil {
			cred = auth.ParseCookieValue(value)
		}
		c.Set(credentialKey, cred)
		c.Next()
	}
}

func credentialFrom(c *gin.Context) auth.Credential {
	value, _ := c.Get(credentialKey)
	cred, _ := value.(auth.Credential)
	return cred
}

// commitQuery falls back to the configured defaults only for absent params;
// present but empty values are passed through.
func (h *Handler) commitQuery(c *gin.Context) (models.CommitQuery, bool) {
	q := models.CommitQuery{
		Username: h.query.DefaultUsername,
		Repo:     h.query.DefaultRepo,
	}
	if username, ok := c.GetQuery("username"); ok {
		q.Username = username
	}
	if repo, ok := c.GetQuery("repo"); ok {
		q.Repo = repo
	}

	refetch := c.Query("refetch")
	return q, refetch == "1" || refetch == "true"
}

// CommitHistoryPage renders the commit-history page
func (h *Handler) CommitHistoryPage(c *gin.Context) {
	q, refetch := h.commitQuery(c)
	history := h.history.Query(c.Request.Context(), credentialFrom(c), q, refetch)

	status := http.StatusOK
	if history.State == models.QueryError {
		status = http.StatusBadGateway
	}

	c.HTML(status, historyTemplate, newHistoryView(history, refreshURL(q)))
}

// SignupPage renders the empty signup form
func (h *Handler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, signupTemplate, signupView{})
}

// SubmitSignup handles the signup form post
func (h *Handler) SubmitSignup(c *gin.Context) {
	var form models.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, signupTemplate, signupView{Form: form, Notice: "Could not read the submitted form"})
		return
	}

	result, err := h.accounts.Submit(c.Request.Context(), form)
	switch {
	case err == nil && result != nil:
		h.setTokenCookie(c, result.CookieValue)
		c.Redirect(http.StatusSeeOther, "/commit-history")
	case err == nil:
		c.HTML(http.StatusOK, signupTemplate, signupView{Form: form})
	case errors.IsValidationError(err):
		c.HTML(http.StatusUnprocessableEntity, signupTemplate, signupView{Form: form, Errors: signup.FieldErrors(err)})
	case errors.IsUnauthorized(err):
		c.HTML(http.StatusUnauthorized, signupTemplate, signupView{Form: form, Notice: signup.WrongCredentialsNotice})
	case errors.IsPending(err):
		c.HTML(http.StatusConflict, signupTemplate, signupView{Form: form, Notice: pendingNotice})
	default:
		// Already logged by the signup service; the page gives no other feedback.
		c.HTML(http.StatusOK, signupTemplate, signupView{Form: form})
	}
}

func (h *Handler) setTokenCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
}

func refreshURL(q models.CommitQuery) string {
	values := url.Values{}
	values.Set("username", q.Username)
	values.Set("repo", q.Repo)
	return "/commit-history?" + values.Encode()
}
