package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paquirobles/cuadros-reserve/pkg/ctxmeta"
)

// HeaderOwnerID — заголовок, в котором шлюз передаёт идентификатор владельца корзины.
const HeaderOwnerID = "X-Owner-ID"

// OwnerIDMiddleware:
// - читает X-Owner-ID (его проставляет API-шлюз после аутентификации)
// - пустой заголовок → 401, дальше запрос не идёт
// - кладёт owner_id в контекст для хендлеров и логов
func OwnerIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetHeader(HeaderOwnerID)
		if ownerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing owner id"})
			return
		}

		ctx := ctxmeta.WithOwnerID(c.Request.Context(), ownerID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// OwnerID — достаёт owner_id, положенный OwnerIDMiddleware.
func OwnerID(c *gin.Context) (string, bool) {
	return ctxmeta.OwnerIDFromContext(c.Request.Context())
}
