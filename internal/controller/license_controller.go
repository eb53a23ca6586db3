package controller

import (
	"quizkey_backend/internal/service"
	"quizkey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LicenseController struct {
	LicenseService *service.LicenseService
}

func NewLicenseController(licenseService *service.LicenseService) *LicenseController {
	return &LicenseController{LicenseService: licenseService}
}

type ValidateLicenseRequest struct {
	Key string `json:"key" binding:"required"`
}

// @Summary 校验激活码
// @Description 检查激活码是否存在、启用且未过期。三种失败原因不区分。
// @Tags 激活码
// @Accept json
// @Produce json
// @Param request body ValidateLicenseRequest true "激活码"
// @Success 200 {object} util.Response
// @Router /license/validate [post]
func (c *LicenseController) Validate(ctx *gin.Context) {
	var req ValidateLicenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	valid, err := c.LicenseService.Validate(req.Key)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"valid": valid})
}
