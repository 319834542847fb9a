package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dues_tracker/internal/identity"
	"dues_tracker/internal/middleware"
	"dues_tracker/internal/repository"
	"dues_tracker/internal/validators"
)

type AuthController struct {
	identity *identity.Service
	users    *repository.UserRepository
	orgs     *repository.OrganizationRepository
}

func NewAuthController(ident *identity.Service, users *repository.UserRepository, orgs *repository.OrganizationRepository) *AuthController {
	return &AuthController{identity: ident, users: users, orgs: orgs}
}

// Signup creates the account and seeds the owner's organization.
func (ctl *AuthController) Signup(c *gin.Context) {
	var input validators.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate, errs := validators.ValidateUser(input)
	if errs != nil {
		respondFieldErrors(c, errs)
		return
	}

	user, org, token, err := ctl.identity.SignUp(c.Request.Context(), candidate)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":        token,
		"user":         user,
		"organization": org,
	})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := ctl.identity.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (ctl *AuthController) Logout(c *gin.Context) {
	if err := ctl.identity.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated user and their organization.
func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.users.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	resp := gin.H{"user": user}
	if org, err := ctl.orgs.GetByOwner(c.Request.Context(), user.ID); err == nil {
		resp["organization"] = org
	}
	c.JSON(http.StatusOK, resp)
}
