package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kamar-Folarin/commit-history-app/internal/errors"
	"github.com/Kamar-Folarin/commit-history-app/internal/models"
	"github.com/Kamar-Folarin/commit-history-app/internal/signup"
)

// GetCommitHistory returns the commit-history query snapshot as JSON
// @Summary Get commit history
// @Description Query the remote API for a repository's commits. Identical queries are served from cache unless refetch is set.
// @Tags commit-history
// @Produce json
// @Param username query string false "GitHub username" default(brandox02)
// @Param repo query string false "Repository name" default(commit-history-api)
// @Param refetch query bool false "Bypass the cache"
// @Success 200 {object} models.CommitHistory
// @Success 202 {object} models.CommitHistory "Query still loading"
// @Failure 502 {object} models.CommitHistory
// @Router /commit-history [get]
func (h *Handler) GetCommitHistory(c *gin.Context) {
	q, refetch := h.commitQuery(c)
	history := h.history.Query(c.Request.Context(), credentialFrom(c), q, refetch)

	switch history.State {
	case models.QueryLoading:
		c.JSON(http.StatusAccepted, history)
	case models.QueryError:
		c.JSON(http.StatusBadGateway, history)
	default:
		c.JSON(http.StatusOK, history)
	}
}

// CreateAccount registers an account and sets the token cookie
// @Summary Sign up
// @Description Validate the signup form, create the account and store the returned token in a cookie
// @Tags signup
// @Accept json
// @Produce json
// @Param request body models.SignupForm true "Signup form"
// @Success 201 {object} StatusResponse
// @Success 204 "Accepted without a token"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /signup [post]
func (h *Handler) CreateAccount(c *gin.Context) {
	var form models.SignupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.accounts.Submit(c.Request.Context(), form)
	switch {
	case err == nil && result != nil:
		h.setTokenCookie(c, result.CookieValue)
		c.JSON(http.StatusCreated, StatusResponse{Status: "created"})
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.IsValidationError(err):
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "Invalid signup form",
			Fields: signup.FieldErrors(err),
		})
	case errors.IsUnauthorized(err):
		respondWithError(c, http.StatusUnauthorized, signup.WrongCredentialsNotice)
	case errors.IsPending(err):
		respondWithError(c, http.StatusConflict, pendingNotice)
	default:
		respondWithError(c, http.StatusBadGateway, "Signup failed")
	}
}

// Health reports that the server is up
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

func respondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
