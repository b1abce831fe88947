package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brewer-backend/internal/screen"
	"brewer-backend/internal/session"
	"brewer-backend/internal/viewmodel"
)

type openSessionRequest struct {
	BrewID   string `json:"brewId" binding:"required"`
	Editable bool   `json:"editable"`
}

type newBrewSessionRequest struct {
	ReferenceID string `json:"referenceId"`
}

type segueRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

type alertRequest struct {
	Action string `json:"action" binding:"required"`
}

// sessionResult answers with the session view, attaching err when an
// operation was rejected so clients can re-render either way.
func (h *Handler) sessionResult(c *gin.Context, view session.View, err error) {
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.fail(c, err)
			return
		}
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "session": view})
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateSession handles POST /api/sessions, opening a brew's details.
func (h *Handler) CreateSession(c *gin.Context) {
	var req openSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, errInvalidRequest)
		return
	}
	s, err := h.sessions.OpenBrew(c.Request.Context(), req.BrewID, req.Editable)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, s.View())
}

// CreateNewBrewSession handles POST /api/sessions/new-brew.
func (h *Handler) CreateNewBrewSession(c *gin.Context) {
	var req newBrewSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.fail(c, errInvalidRequest)
			return
		}
	}
	s, err := h.sessions.StartBrew(c.Request.Context(), req.ReferenceID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, s.View())
}

func (h *Handler) session(c *gin.Context) (*session.Session, bool) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return s, true
}

// GetSession handles GET /api/sessions/:id.
func (h *Handler) GetSession(c *gin.Context) {
	if s, ok := h.session(c); ok {
		c.JSON(http.StatusOK, s.View())
	}
}

// DeleteSession handles DELETE /api/sessions/:id.
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Close(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Select handles POST /api/sessions/:id/select.
func (h *Handler) Select(c *gin.Context) {
	var req viewmodel.IndexPath
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, errInvalidRequest)
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}
	view, err := s.Select(c.Request.Context(), req)
	h.sessionResult(c, view, err)
}

// PerformSegue handles POST /api/sessions/:id/segue.
func (h *Handler) PerformSegue(c *gin.Context) {
	var req segueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, errInvalidRequest)
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}
	view, err := s.PerformSegue(c.Request.Context(), req.Identifier)
	h.sessionResult(c, view, err)
}

// Input handles POST /api/sessions/:id/input.
func (h *Handler) Input(c *gin.Context) {
	var req screen.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, errInvalidRequest)
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}
	view, err := s.Input(c.Request.Context(), req)
	h.sessionResult(c, view, err)
}

// AnswerAlert handles POST /api/sessions/:id/alert.
func (h *Handler) AnswerAlert(c *gin.Context) {
	var req alertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, errInvalidRequest)
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}
	view, err := s.AnswerAlert(c.Request.Context(), req.Action)
	h.sessionResult(c, view, err)
}

// Back handles POST /api/sessions/:id/back.
func (h *Handler) Back(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	view, err := s.Back(c.Request.Context())
	h.sessionResult(c, view, err)
}

// recoverConfiguration turns a panic raised while wiring or dispatching a
// screen into a 500 response.
func (h *Handler) recoverConfiguration(c *gin.Context, recovered any) {
	h.log.Error("panic while handling request",
		zap.String("path", c.FullPath()), zap.String("panic", fmt.Sprint(recovered)))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
