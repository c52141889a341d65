package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateNotificationRequest is the body of the notification creation endpoint.
type CreateNotificationRequest struct {
	UserID        uuid.UUID `json:"userId" binding:"required"`
	QuotationName string    `json:"quotationName" binding:"required"`
	ExpiryDate    time.Time `json:"expiryDate" binding:"required"`
}

// CreateNotification records a new notification for a user.
func (controller *NotificationController) CreateNotification(c *gin.Context) {
	var request CreateNotificationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	notification, err := controller.engine.Create(
		c.Request.Context(), request.UserID, request.QuotationName, request.ExpiryDate)
	if err != nil {
		controller.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notification)
}

// GetNotification fetches a single notification by its identifier.
func (controller *NotificationController) GetNotification(c *gin.Context) {
	id, ok := parseUUID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	notification, err := controller.engine.Get(c.Request.Context(), id)
	if err != nil {
		controller.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

// GetUnseenCount reports the number of unseen notifications for a user. A user
// with nothing unseen gets a count of zero, never a 404.
func (controller *NotificationController) GetUnseenCount(c *gin.Context) {
	userID, ok := parseUUID(c, "userId", c.Param("userId"))
	if !ok {
		return
	}

	count, err := controller.engine.CountUnseen(c.Request.Context(), userID)
	if err != nil {
		controller.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID, "unseenCount": count})
}

// GetUnseenNotifications lists a user's unseen notifications. An empty listing
// is a valid response.
func (controller *NotificationController) GetUnseenNotifications(c *gin.Context) {
	userID, ok := parseUUID(c, "userId", c.Param("userId"))
	if !ok {
		return
	}

	views, err := controller.engine.ListUnseen(c.Request.Context(), userID)
	if err != nil {
		controller.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// GetSeenAndUnseenNotifications lists every notification addressed to a user
// along with its seen flag. An empty listing is a valid response.
func (controller *NotificationController) GetSeenAndUnseenNotifications(c *gin.Context) {
	userID, ok := parseUUID(c, "userId", c.Param("userId"))
	if !ok {
		return
	}

	views, err := controller.engine.ListSeenAndUnseen(c.Request.Context(), userID)
	if err != nil {
		controller.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// GetSeenNotifications lists a user's seen notifications with the username
// attached to every element. A user with no seen notifications gets a 404.
func (controller *NotificationController) GetSeenNotifications(c *gin.Context) {
	userID, ok := parseUUID(c, "userId", c.Param("userId"))
	if !ok {
		return
	}

	views, err := controller.engine.ListSeen(c.Request.Context(), userID)
	if err != nil {
		controller.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// MarkAsSeen marks the user's oldest unseen notification as seen. The response
// is always a 200; the message distinguishes whether anything was marked.
func (controller *NotificationController) MarkAsSeen(c *gin.Context) {
	userID, ok := parseUUID(c, "userId", c.Param("userId"))
	if !ok {
		return
	}

	outcome, err := controller.engine.MarkOneSeen(c.Request.Context(), userID)
	if err != nil {
		controller.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// UpdateSendingStatus marks every unseen notification for the user as seen. The
// user is identified by the `userId` query parameter.
func (controller *NotificationController) UpdateSendingStatus(c *gin.Context) {
	userID, ok := parseUUID(c, "userId", c.Query("userId"))
	if !ok {
		return
	}

	outcome, err := controller.engine.MarkAllSeen(c.Request.Context(), userID)
	if err != nil {
		controller.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}
