package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/scriba-dev/scriba/internal/store"
)

// storeError translates a gateway failure into the API's error contract.
// notFound and duplicate carry the resource-specific messages; any other
// failure is an unexpected datastore error and becomes a 500.
func storeError(ctx *gin.Context, err error, notFound, duplicate string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, store.ErrDuplicate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": duplicate})
	default:
		logrus.WithError(err).Error("Unexpected store failure")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// storeReadError is storeError for lookups and deletes, where a
// duplicate cannot arise.
func storeReadError(ctx *gin.Context, err error, notFound string) {
	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}

	logrus.WithError(err).Error("Unexpected store failure")
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// pathID parses the numeric id path parameter. An unparseable id cannot
// name a row, so callers answer it with their not-found message.
func pathID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		return 0, false
	}

	return uint(id), true
}
