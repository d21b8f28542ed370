package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "greenchain/internal/errors"
	"greenchain/internal/logger"
)

// txDateLayout is the only accepted wire format for transaction dates.
const txDateLayout = "2006-01-02"

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// parseTxDate parses a strict YYYY-MM-DD calendar date.
func parseTxDate(s string) (time.Time, error) {
	if len(s) != len(txDateLayout) {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	t, err := time.Parse(txDateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return t, nil
}

// respondWithError writes a consistent JSON error response. If the error is
// an *AppError it uses the error's status code and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
// The wire shape is a flat {"error": message} object.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{"error": appErr.Message})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{"error": apperrors.ErrInternalServer.Message})
}
