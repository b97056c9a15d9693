package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/TuanKiet52/APIRadio/docview"
)

// Read-only routes over the document view. Writes go through the
// relational store and are projected, never accepted here.

func ListDocs(c *gin.Context) {
	collection := c.Param("collection")
	if !docview.KnownCollection(collection) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection"})
		return
	}

	docs, err := docsFrom(c).Store().List(c.Request.Context(), collection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list documents", "details": err.Error()})
		return
	}

	out := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		out = append(out, json.RawMessage(doc))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func GetDocByID(c *gin.Context) {
	collection := c.Param("collection")
	if !docview.KnownCollection(collection) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection"})
		return
	}

	id := c.Param("id")
	if !docview.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document id"})
		return
	}

	doc, err := docsFrom(c).Store().Get(c.Request.Context(), collection, id)
	if err != nil {
		if errors.Is(err, docview.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot load document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": json.RawMessage(doc)})
}
