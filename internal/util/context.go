package util

import (
	"quizkey_backend/internal/model"

	"github.com/gin-gonic/gin"
)

const PrincipalContextKey = "principal"

// GetPrincipal 取出激活码中间件写入的授权主体
func GetPrincipal(c *gin.Context) (model.Principal, bool) {
	v, exists := c.Get(PrincipalContextKey)
	if !exists {
		return model.Principal{}, false
	}
	p, ok := v.(model.Principal)
	return p, ok
}
