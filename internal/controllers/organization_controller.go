package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dues_tracker/internal/repository"
	"dues_tracker/internal/validators"
)

type OrganizationController struct {
	orgs *repository.OrganizationRepository
}

func NewOrganizationController(orgs *repository.OrganizationRepository) *OrganizationController {
	return &OrganizationController{orgs: orgs}
}

func (ctl *OrganizationController) Get(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"organization": org})
}

func (ctl *OrganizationController) Update(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validated, errs := validators.ValidateOrganization(validators.OrganizationInput{
		Name:    input.Name,
		OwnerID: org.OwnerID,
	})
	if errs != nil {
		respondFieldErrors(c, errs)
		return
	}

	if err := ctl.orgs.Update(c.Request.Context(), org.ID, map[string]interface{}{"name": validated.Name}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update organization"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "organization updated"})
}
