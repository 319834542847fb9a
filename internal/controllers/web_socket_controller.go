package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"dues_tracker/internal/middleware"
	"dues_tracker/internal/repository"
)

// upgrader configures the WebSocket connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // restrict in production
	},
}

// FeedController streams live transaction snapshots to connected clients.
type FeedController struct {
	transactions *repository.TransactionRepository
	orgs         *repository.OrganizationRepository
}

func NewFeedController(transactions *repository.TransactionRepository, orgs *repository.OrganizationRepository) *FeedController {
	return &FeedController{transactions: transactions, orgs: orgs}
}

// HandleTransactionFeed authenticates via a token query parameter (browsers
// cannot set headers on WebSocket dials), subscribes the connection to the
// owner's organization feed and writes every snapshot until the client
// disconnects. Each message is the complete current transaction set.
func (ctl *FeedController) HandleTransactionFeed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication token"})
		return
	}
	userID, err := middleware.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	org, err := ctl.orgs.GetByOwner(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load organization"})
		}
		return
	}

	sub, err := ctl.transactions.Subscribe(c.Request.Context(), org.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not open transaction feed"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		sub.Cancel()
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	logrus.WithFields(logrus.Fields{
		"org_id":  org.ID,
		"user_id": userID,
	}).Info("Transaction feed connection established")

	// The read loop exists only to detect the client going away; feed
	// clients are not expected to send anything.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sub.Cancel()
				return
			}
		}
	}()

	for snapshot := range sub.C {
		if err := conn.WriteJSON(snapshot); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).WithField("org_id", org.ID).Warn("Failed to write transaction snapshot")
			}
			break
		}
	}
	sub.Cancel()

	logrus.WithField("org_id", org.ID).Info("Transaction feed connection closed")
}
