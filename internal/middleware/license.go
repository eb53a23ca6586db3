package middleware

import (
	"errors"

	"quizkey_backend/internal/service"
	"quizkey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const LicenseKeyHeader = "X-License-Key"

// LicenseMiddleware 每个答题类接口的准入闸门。
// 激活码从请求头取，缺头时退回 query 参数（老客户端）。
// 未知、停用、过期一律返回同样的 401。
func LicenseMiddleware(licenses *service.LicenseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(LicenseKeyHeader)
		if key == "" {
			key = c.Query("license_key")
		}

		principal, err := licenses.Authorize(key)
		if err != nil {
			if errors.Is(err, util.ErrUnauthorized) {
				util.Unauthorized(c)
			} else {
				util.LogInternalError(c, err)
			}
			c.Abort()
			return
		}

		c.Set(util.PrincipalContextKey, principal)
		c.Next()
	}
}
