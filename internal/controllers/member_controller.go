package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dues_tracker/internal/csvimport"
	"dues_tracker/internal/repository"
	"dues_tracker/internal/validators"
)

type MemberController struct {
	members *repository.MemberRepository
	orgs    *repository.OrganizationRepository
}

func NewMemberController(members *repository.MemberRepository, orgs *repository.OrganizationRepository) *MemberController {
	return &MemberController{members: members, orgs: orgs}
}

// Add validates the candidate and rejects duplicates before writing.
func (ctl *MemberController) Add(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}

	var input validators.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.OrgID = org.ID

	member, errs := validators.ValidateMember(input)
	if errs != nil {
		respondFieldErrors(c, errs)
		return
	}

	if err := ctl.members.AddMember(c.Request.Context(), member); err != nil {
		if errors.Is(err, repository.ErrDuplicateMember) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add member: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": member})
}

func (ctl *MemberController) List(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}

	members, err := ctl.members.GetMembers(c.Request.Context(), org.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": members})
}

// Update merges the patch onto the stored record and runs the result through
// the same validator used for creation, so edits cannot bypass the schema.
func (ctl *MemberController) Update(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}

	existing, err := ctl.members.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil || existing.OrgID != org.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}

	var input struct {
		Name   *string `json:"name"`
		Email  *string `json:"email"`
		Role   *string `json:"role"`
		Phone  *string `json:"phone_number"`
		Status *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merged := validators.MemberInput{
		Name:   pick(input.Name, existing.Name),
		Email:  pick(input.Email, existing.Email),
		OrgID:  existing.OrgID,
		Role:   pick(input.Role, existing.Role),
		Phone:  pick(input.Phone, existing.Phone),
		Status: pick(input.Status, existing.Status),
	}
	member, errs := validators.ValidateMember(merged)
	if errs != nil {
		respondFieldErrors(c, errs)
		return
	}

	fields := map[string]interface{}{
		"name":   member.Name,
		"email":  member.Email,
		"role":   member.Role,
		"phone":  member.Phone,
		"status": member.Status,
	}
	if err := ctl.members.UpdateMember(c.Request.Context(), existing.ID, fields); err != nil {
		if errors.Is(err, repository.ErrDuplicateMember) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update member: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "member updated"})
}

func (ctl *MemberController) Delete(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}

	existing, err := ctl.members.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil || existing.OrgID != org.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}

	if err := ctl.members.DeleteMember(c.Request.Context(), existing.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "member deleted"})
}

// Import bulk-adds members from an uploaded CSV. Each surviving row goes
// through the same validator and duplicate check as a single add.
func (ctl *MemberController) Import(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing csv file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not open csv file"})
		return
	}
	defer file.Close()

	result, err := ctl.importRows(c, org.ID, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctl *MemberController) importRows(c *gin.Context, orgID string, file io.Reader) (gin.H, error) {
	parsed, err := csvimport.Parse(file)
	if err != nil {
		return nil, err
	}

	skipped := parsed.Skipped
	added := 0
	for _, row := range parsed.Rows {
		member, errs := validators.ValidateMember(validators.MemberInput{
			Name:  row.Name,
			Email: row.Email,
			OrgID: orgID,
			Role:  row.Role,
			Phone: row.Phone,
		})
		if errs != nil {
			skipped = append(skipped, csvimport.SkippedRow{Line: row.Line, Reason: errs.Error()})
			continue
		}

		if err := ctl.members.AddMember(c.Request.Context(), member); err != nil {
			if errors.Is(err, repository.ErrDuplicateMember) {
				skipped = append(skipped, csvimport.SkippedRow{Line: row.Line, Reason: "duplicate member"})
				continue
			}
			return nil, err
		}
		added++
	}

	logrus.WithFields(logrus.Fields{
		"org_id":  orgID,
		"added":   added,
		"skipped": len(skipped),
	}).Info("Member CSV import finished")
	return gin.H{"added": added, "skipped": skipped}, nil
}

func pick(patch *string, existing string) string {
	if patch != nil {
		return *patch
	}
	return existing
}
