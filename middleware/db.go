package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/docview"
)

// DBMiddleware injects the shared GORM handle into the request context.
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	}
}

// DocsMiddleware injects the document view projector.
func DocsMiddleware(docs *docview.Projector) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("docs", docs)
		c.Next()
	}
}
