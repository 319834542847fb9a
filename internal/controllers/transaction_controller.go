package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"dues_tracker/internal/middleware"
	"dues_tracker/internal/repository"
	"dues_tracker/internal/storage"
	"dues_tracker/internal/validators"
)

type TransactionController struct {
	transactions *repository.TransactionRepository
	orgs         *repository.OrganizationRepository
	receipts     storage.Uploader
}

func NewTransactionController(transactions *repository.TransactionRepository, orgs *repository.OrganizationRepository, receipts storage.Uploader) *TransactionController {
	return &TransactionController{transactions: transactions, orgs: orgs, receipts: receipts}
}

// Create accepts a JSON payload or, when a receipt is attached, a multipart
// form with the same fields plus a "receipt" file.
func (ctl *TransactionController) Create(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}

	var input validators.TransactionInput
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		parsed, err := ctl.parseMultipart(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input = *parsed
	} else if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.OrgID = org.ID
	input.CreatedBy = middleware.UserID(c)

	txn, errs := validators.ValidateTransaction(input)
	if errs != nil {
		respondFieldErrors(c, errs)
		return
	}

	if err := ctl.transactions.Create(c.Request.Context(), txn); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create transaction: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": txn})
}

func (ctl *TransactionController) List(c *gin.Context) {
	org, ok := currentOrg(c, ctl.orgs)
	if !ok {
		return
	}

	txns, err := ctl.transactions.ListByOrg(c.Request.Context(), org.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch transactions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": txns})
}

func (ctl *TransactionController) parseMultipart(c *gin.Context) (*validators.TransactionInput, error) {
	input := &validators.TransactionInput{
		Type:        c.PostForm("type"),
		Amount:      validators.Amount(c.PostForm("amount")),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Date:        c.PostForm("date"),
	}

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		// No receipt attached; the transaction is still valid.
		return input, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open receipt: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read receipt: %w", err)
	}

	path := fmt.Sprintf("receipts/%d_%s", time.Now().UnixMilli(), fileHeader.Filename)
	url, err := ctl.receipts.Upload(c.Request.Context(), path, data)
	if err != nil {
		return nil, fmt.Errorf("upload receipt: %w", err)
	}
	input.ReceiptURL = url
	return input, nil
}
