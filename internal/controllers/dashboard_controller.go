package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dues_tracker/internal/dashboard"
	"dues_tracker/internal/repository"
)

type DashboardController struct {
	transactions *repository.TransactionRepository
	fees         *repository.FeeRepository
	orgs         *repository.OrganizationRepository
}

func NewDashboardController(transactions *repository.TransactionRepository, fees *repository.FeeRepository, orgs *repository.OrganizationRepository) *DashboardController {
	return &DashboardController{transactions: transactions, fees: fees, orgs: orgs}
}

// Summary loads the organization's transactions and fee assignments and
// returns the computed aggregates.
func (ctl *DashboardController) Summary(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}

	txns, err := ctl.transactions.ListByOrg(c.Request.Context(), org.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch transactions"})
		return
	}
	assignments, err := ctl.fees.GetAssignmentsByOrg(c.Request.Context(), org.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch fee assignments"})
		return
	}

	c.JSON(http.StatusOK, dashboard.Summarize(txns, assignments))
}
