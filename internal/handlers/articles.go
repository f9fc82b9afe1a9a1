package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/scriba-dev/scriba/internal/models"
	"github.com/scriba-dev/scriba/internal/schemas"
	"github.com/scriba-dev/scriba/internal/store"
)

type Articles struct {
	articles store.ArticleStore
	users    store.UserStore
}

func NewArticles(articles store.ArticleStore, users store.UserStore) *Articles {
	return &Articles{articles: articles, users: users}
}

// authorExists answers whether the referenced author row is present. A
// missing author is reported to the client as 404 "user is not valid"
// by the callers.
func (h *Articles) authorExists(ctx *gin.Context, id uint) bool {
	_, err := h.users.GetByID(ctx.Request.Context(), id)

	if err == nil {
		return true
	}

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "user is not valid"})
		return false
	}

	logrus.WithError(err).Error("Unexpected store failure")
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	return false
}

func (h *Articles) Create(ctx *gin.Context) {
	var body schemas.ArticlePayload

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": schemas.FieldErrors(err)})
		return
	}

	if !h.authorExists(ctx, body.Author) {
		return
	}

	article := models.Article{
		Header:      body.Header,
		Description: body.Description,
		AuthorID:    body.Author,
	}

	if err := h.articles.Create(ctx.Request.Context(), &article); err != nil {
		storeError(ctx, err, "article not found", "such article already exists")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"article":     article.ID,
		"header":      article.Header,
		"description": article.Description,
	})
}

func (h *Articles) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	article, err := h.articles.GetByID(ctx.Request.Context(), id)

	if err != nil {
		storeReadError(ctx, err, "article not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"header":      article.Header,
		"description": article.Description,
		"ts":          article.CreatedAt.Unix(),
	})
}

func (h *Articles) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	var body schemas.ArticlePayload

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": schemas.FieldErrors(err)})
		return
	}

	if _, err := h.articles.GetByID(ctx.Request.Context(), id); err != nil {
		storeReadError(ctx, err, "article not found")
		return
	}

	if !h.authorExists(ctx, body.Author) {
		return
	}

	replacement := models.Article{
		Header:      body.Header,
		Description: body.Description,
		AuthorID:    body.Author,
	}

	if _, err := h.articles.Update(ctx.Request.Context(), id, &replacement); err != nil {
		storeError(ctx, err, "article not found", "such article already exists")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"result": "article updated"})
}

func (h *Articles) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	if err := h.articles.Delete(ctx.Request.Context(), id); err != nil {
		storeReadError(ctx, err, "article not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"result": "article deleted"})
}
