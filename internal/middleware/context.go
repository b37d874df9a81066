package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/clinovate/clinic-scheduling-api/internal/utils"
)

// requestContext lifts gin context keys into the request context so that
// claim lookups work the same here as below the transport layer.
func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	for k, v := range c.Keys {
		ctx = context.WithValue(ctx, utils.ContextKey(k), v)
	}
	return ctx
}
