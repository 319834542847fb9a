package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dues_tracker/internal/middleware"
	"dues_tracker/internal/models"
	"dues_tracker/internal/repository"
	"dues_tracker/internal/validators"
)

// currentOrg resolves the authenticated user's organization. Writes the
// error response itself; callers bail out when ok is false.
func currentOrg(c *gin.Context, orgs *repository.OrganizationRepository) (*models.Organization, bool) {
	org, err := orgs.GetByOwner(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load organization: " + err.Error()})
		}
		return nil, false
	}
	return org, true
}

func respondFieldErrors(c *gin.Context, errs validators.FieldErrors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}
