package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lenslink/lenslink/model"
)

// SwipeRequest defines the structure for swipe submissions.
type SwipeRequest struct {
	TargetUserID string               `json:"target_user_id"`
	Direction    model.SwipeDirection `json:"direction"`
}

// SwipeHandler records the caller's verdict on another user. When a like
// becomes mutual, the conversation thread is created and returned.
// Request Body: SwipeRequest
func (api *API) SwipeHandler(c *gin.Context) {
	claims, ok := callerClaims(c)
	if !ok {
		SendUnauthorizedError(c, "Authentication required")
		return
	}

	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result := &ValidationResult{Valid: true}
	if strings.TrimSpace(req.TargetUserID) == "" {
		result.AddError("target_user_id", "Target user is required")
	}
	if req.TargetUserID == claims.UserID {
		result.AddError("target_user_id", "Cannot swipe on yourself")
	}
	if !req.Direction.IsValid() {
		result.AddError("direction", "Direction must be 'like' or 'pass'")
	}
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	ctx := c.Request.Context()
	err := api.store.RecordSwipe(ctx, model.Swipe{
		FromUserID: claims.UserID,
		ToUserID:   req.TargetUserID,
		Direction:  req.Direction,
	})
	if err != nil {
		SendStoreError(c, "swipe recording", err)
		return
	}

	if req.Direction != model.SwipeLike {
		c.JSON(http.StatusOK, gin.H{"matched": false})
		return
	}

	reciprocal, err := api.store.HasLike(ctx, req.TargetUserID, claims.UserID)
	if err != nil {
		SendStoreError(c, "swipe lookup", err)
		return
	}
	if !reciprocal {
		c.JSON(http.StatusOK, gin.H{"matched": false})
		return
	}

	thread, err := api.store.EnsureThread(ctx, claims.UserID, req.TargetUserID)
	if err != nil {
		SendStoreError(c, "thread creation", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matched": true, "thread": thread})
}

// ListMatchesHandler lists the caller's mutual matches, one thread each.
func (api *API) ListMatchesHandler(c *gin.Context) {
	claims, ok := callerClaims(c)
	if !ok {
		SendUnauthorizedError(c, "Authentication required")
		return
	}

	threads, err := api.store.ListThreads(c.Request.Context(), claims.UserID)
	if err != nil {
		SendStoreError(c, "match listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": threads, "total": len(threads)})
}

// ListThreadsHandler lists the caller's conversation threads.
func (api *API) ListThreadsHandler(c *gin.Context) {
	claims, ok := callerClaims(c)
	if !ok {
		SendUnauthorizedError(c, "Authentication required")
		return
	}

	threads, err := api.store.ListThreads(c.Request.Context(), claims.UserID)
	if err != nil {
		SendStoreError(c, "thread listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"threads": threads, "total": len(threads)})
}

// ListMessagesHandler lists a thread's messages in send order.
func (api *API) ListMessagesHandler(c *gin.Context) {
	threadID := c.Param("threadId")

	thread, ok := api.loadParticipantThread(c, threadID)
	if !ok {
		return
	}

	var query struct {
		Page     int `form:"page"`
		PageSize int `form:"page_size"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed,
			"Invalid query parameters: "+err.Error())
		return
	}
	page, pageSize, _ := ValidatePagination(query.Page, query.PageSize)

	messages, err := api.store.ListMessages(c.Request.Context(), thread.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		SendStoreError(c, "message listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":  messages,
		"page":      page,
		"page_size": pageSize,
	})
}

// SendMessageRequest defines the structure for sending a message.
type SendMessageRequest struct {
	Body string `json:"body"`
}

// SendMessageHandler appends a message to a thread the caller belongs to.
// Request Body: SendMessageRequest
func (api *API) SendMessageHandler(c *gin.Context) {
	threadID := c.Param("threadId")

	thread, ok := api.loadParticipantThread(c, threadID)
	if !ok {
		return
	}
	claims, _ := callerClaims(c)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if strings.TrimSpace(req.Body) == "" {
		result := &ValidationResult{}
		result.AddError("body", "Message body cannot be empty")
		SendValidationError(c, result)
		return
	}

	message, err := api.store.AddMessage(c.Request.Context(), model.Message{
		ThreadID: thread.ID,
		SenderID: claims.UserID,
		Body:     req.Body,
	})
	if err != nil {
		SendStoreError(c, "message sending", err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// loadParticipantThread fetches the thread and verifies the caller is one
// of its two participants. It writes the error response itself on failure.
func (api *API) loadParticipantThread(c *gin.Context, threadID string) (model.Thread, bool) {
	claims, ok := callerClaims(c)
	if !ok {
		SendUnauthorizedError(c, "Authentication required")
		return model.Thread{}, false
	}

	thread, err := api.store.GetThread(c.Request.Context(), threadID)
	if err != nil {
		SendStoreError(c, "thread lookup", err)
		return model.Thread{}, false
	}
	if !thread.HasParticipant(claims.UserID) {
		SendForbiddenError(c, "Only thread participants can access it")
		return model.Thread{}, false
	}

	return thread, true
}
