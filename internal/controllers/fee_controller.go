package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dues_tracker/internal/models"
	"dues_tracker/internal/repository"
	"dues_tracker/internal/validators"
)

type FeeController struct {
	fees *repository.FeeRepository
	orgs *repository.OrganizationRepository
}

func NewFeeController(fees *repository.FeeRepository, orgs *repository.OrganizationRepository) *FeeController {
	return &FeeController{fees: fees, orgs: orgs}
}

// Add creates the fee and its per-member assignments.
func (ctl *FeeController) Add(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}

	var input validators.FeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.OrgID = org.ID

	fee, errs := validators.ValidateFee(input)
	if errs != nil {
		respondFieldErrors(c, errs)
		return
	}

	if err := ctl.fees.AddFee(c.Request.Context(), fee); err != nil {
		if errors.Is(err, repository.ErrNoAssignees) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create fee: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"fee": fee})
}

func (ctl *FeeController) List(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}

	fees, err := ctl.fees.GetFees(c.Request.Context(), org.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch fees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": fees})
}

// Update patches name, amount and due date. The assigned member set is fixed
// at creation and not editable here.
func (ctl *FeeController) Update(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}
	fee, err := ctl.fees.GetFee(c.Request.Context(), c.Param("id"))
	if err != nil || fee.OrgID != org.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "fee not found"})
		return
	}

	var input struct {
		Name    *string            `json:"name"`
		Amount  *validators.Amount `json:"amount"`
		DueDate *string            `json:"due_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merged := validators.FeeInput{
		Name:      fee.Name,
		Amount:    validators.Amount(fee.Amount.String()),
		DueDate:   fee.DueDate.Format("2006-01-02"),
		MemberIDs: fee.MemberIDs,
		OrgID:     fee.OrgID,
	}
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.Amount != nil {
		merged.Amount = *input.Amount
	}
	if input.DueDate != nil {
		merged.DueDate = *input.DueDate
	}

	validated, errs := validators.ValidateFee(merged)
	if errs != nil {
		respondFieldErrors(c, errs)
		return
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = validated.Name
	}
	if input.Amount != nil {
		fields["amount"] = validated.Amount
	}
	if input.DueDate != nil {
		fields["due_date"] = validated.DueDate
	}
	if err := ctl.fees.UpdateFee(c.Request.Context(), fee.ID, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update fee: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fee updated"})
}

// Delete removes the fee and every assignment referencing it.
func (ctl *FeeController) Delete(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}
	fee, err := ctl.fees.GetFee(c.Request.Context(), c.Param("id"))
	if err != nil || fee.OrgID != org.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "fee not found"})
		return
	}

	if err := ctl.fees.DeleteFee(c.Request.Context(), fee.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete fee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fee deleted"})
}

func (ctl *FeeController) Assignments(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}
	fee, err := ctl.fees.GetFee(c.Request.Context(), c.Param("id"))
	if err != nil || fee.OrgID != org.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "fee not found"})
		return
	}

	assignments, err := ctl.fees.GetFeeAssignments(c.Request.Context(), fee.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch assignments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": assignments})
}

// Pay patches an assignment; marking it paid records the matching Revenue
// transaction downstream.
func (ctl *FeeController) Pay(c *gin.Context) {
	if _, ok := currentOrg(c, ctl.orgs); !ok {
		return
	}

	var patch repository.AssignmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if patch.PaymentMethod != nil && !validPaymentMethod(*patch.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method"})
		return
	}

	if err := ctl.fees.UpdateFeeAssignment(c.Request.Context(), c.Param("id"), patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update assignment: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "assignment updated"})
}

func validPaymentMethod(method string) bool {
	switch strings.ToUpper(method) {
	case models.PaymentCash, models.PaymentCheck, models.PaymentVenmo,
		models.PaymentZelle, models.PaymentCreditCard, models.PaymentOther:
		return true
	}
	return false
}
