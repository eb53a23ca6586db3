package controller

import (
	"time"

	"quizkey_backend/internal/service"
	"quizkey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService   *service.AdminService
	LicenseService *service.LicenseService
	SettingService *service.SettingService
}

func NewAdminController(adminService *service.AdminService, licenseService *service.LicenseService, settingService *service.SettingService) *AdminController {
	return &AdminController{
		AdminService:   adminService,
		LicenseService: licenseService,
		SettingService: settingService,
	}
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// @Summary 管理员登录
// @Description 校验管理员口令并签发 JWT
// @Tags 管理
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "管理员口令"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AdminService.Login(req.Password)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// @Summary 修改管理员口令
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "新旧口令"
// @Success 200 {object} util.Response
// @Router /admin/password [put]
func (c *AdminController) ChangePassword(ctx *gin.Context) {
	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AdminService.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

type CreateLicenseRequest struct {
	Key        string     `json:"key"`
	ExpiresAt  *time.Time `json:"expires_at"`
	MaxDevices int        `json:"max_devices"`
	Notes      string     `json:"notes"`
	CreatedBy  string     `json:"created_by"`
}

// @Summary 生成激活码
// @Description 未提供 key 时自动生成 XXXX-XXXX-XXXX-XXXX 格式
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLicenseRequest true "激活码参数"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /admin/licenses [post]
func (c *AdminController) CreateLicense(ctx *gin.Context) {
	var req CreateLicenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	license, err := c.LicenseService.Create(req.Key, req.ExpiresAt, req.MaxDevices, req.Notes, req.CreatedBy)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, license)
}

// @Summary 激活码列表
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /admin/licenses [get]
func (c *AdminController) ListLicenses(ctx *gin.Context) {
	licenses, err := c.LicenseService.List()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, licenses)
}

// @Summary 查询单个激活码
// @Description 附带 usable 字段：启用且未过期
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param key path string true "激活码"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/licenses/{key} [get]
func (c *AdminController) GetLicense(ctx *gin.Context) {
	license, err := c.LicenseService.Lookup(ctx.Param("key"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"license": license,
		"usable":  license.Usable(time.Now()),
	})
}

type UpdateLicenseRequest struct {
	MaxDevices  *int       `json:"max_devices"`
	Notes       *string    `json:"notes"`
	ExpiresAt   *time.Time `json:"expires_at"`
	ClearExpiry bool       `json:"clear_expiry"`
}

// @Summary 更新激活码属性
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "激活码"
// @Param request body UpdateLicenseRequest true "更新字段"
// @Success 200 {object} util.Response
// @Router /admin/licenses/{key} [put]
func (c *AdminController) UpdateLicense(ctx *gin.Context) {
	var req UpdateLicenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.LicenseService.UpdateMeta(ctx.Param("key"), req.MaxDevices, req.Notes, req.ExpiresAt, req.ClearExpiry); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 停用激活码
// @Description 停用后保留历史数据，校验接口返回无效
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param key path string true "激活码"
// @Success 200 {object} util.Response
// @Router /admin/licenses/{key}/deactivate [post]
func (c *AdminController) DeactivateLicense(ctx *gin.Context) {
	if err := c.LicenseService.Deactivate(ctx.Param("key")); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 删除激活码
// @Description 级联删除该激活码名下的进度、会话、收藏与错题
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param key path string true "激活码"
// @Success 200 {object} util.Response
// @Router /admin/licenses/{key} [delete]
func (c *AdminController) DeleteLicense(ctx *gin.Context) {
	if err := c.LicenseService.Delete(ctx.Param("key")); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 读取系统设置
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param key path string true "设置键"
// @Success 200 {object} util.Response
// @Router /admin/settings/{key} [get]
func (c *AdminController) GetSetting(ctx *gin.Context) {
	setting, err := c.SettingService.Get(ctx.Param("key"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, setting)
}

type SetSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// @Summary 写入系统设置
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "设置键"
// @Param request body SetSettingRequest true "设置值"
// @Success 200 {object} util.Response
// @Router /admin/settings/{key} [put]
func (c *AdminController) SetSetting(ctx *gin.Context) {
	var req SetSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SettingService.Set(ctx.Param("key"), req.Value); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
