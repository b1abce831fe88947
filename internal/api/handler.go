package api

import (
	"errors"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"brewer-backend/internal/analytics"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/navigation"
	"brewer-backend/internal/screen"
	"brewer-backend/internal/session"
	"brewer-backend/internal/viewmodel"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	db        *gorm.DB
	sessions  *session.Manager
	webpush   *webpush.Options
	analytics *analytics.Recorder
	log       *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(db *gorm.DB, sessions *session.Manager, webpushOptions *webpush.Options, recorder *analytics.Recorder, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		db:        db,
		sessions:  sessions,
		webpush:   webpushOptions,
		analytics: recorder,
		log:       log.Named("api"),
	}
}

var errInvalidRequest = errors.New("invalid request")

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, modelcontroller.ErrBrewNotFound),
		errors.Is(err, modelcontroller.ErrItemNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrAlertPending),
		errors.Is(err, session.ErrAtRoot),
		errors.Is(err, navigation.ErrNoAlert),
		errors.Is(err, viewmodel.ErrBrewFinished):
		return http.StatusConflict
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, session.ErrUnknownSegue),
		errors.Is(err, session.ErrNoSegue),
		errors.Is(err, screen.ErrUnknownAction),
		errors.Is(err, screen.ErrMissingValue),
		errors.Is(err, screen.ErrNotSelectable),
		errors.Is(err, screen.ErrNoInput),
		errors.Is(err, navigation.ErrUnknownAction),
		errors.Is(err, viewmodel.ErrInvalidIndexPath),
		errors.Is(err, viewmodel.ErrInvalidInput),
		errors.Is(err, modelcontroller.ErrEmptyName),
		errors.Is(err, modelcontroller.ErrNoBrew):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
