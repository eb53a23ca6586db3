package controller

import (
	"quizkey_backend/internal/service"
	"quizkey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type RecordAttemptRequest struct {
	SectionID      string `json:"section_id" binding:"required"`
	Score          int    `json:"score" binding:"min=0"`
	TotalQuestions int    `json:"total_questions" binding:"required,min=1"`
	Percentage     int    `json:"percentage" binding:"min=0,max=100"`
}

// @Summary 提交一次答题成绩
// @Description 同章节重复提交时原子合并：覆盖最近成绩，attempts 加一，best_score 只升不降
// @Tags 进度
// @Accept json
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Param request body RecordAttemptRequest true "本次成绩"
// @Success 200 {object} util.Response
// @Router /progress/attempts [post]
func (c *ProgressController) RecordAttempt(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req RecordAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.ProgressService.RecordAttempt(p, req.SectionID, req.Score, req.TotalQuestions, req.Percentage)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, record)
}

// @Summary 进度总览
// @Description 返回该激活码名下全部章节的进度与聚合统计
// @Tags 进度
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Success 200 {object} util.Response
// @Router /progress [get]
func (c *ProgressController) Overview(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.ProgressService.Overview(p)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// @Summary 单章节进度
// @Tags 进度
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Param sectionId path string true "章节 ID"
// @Success 200 {object} util.Response
// @Router /progress/sections/{sectionId} [get]
func (c *ProgressController) GetSection(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.ProgressService.GetSection(p, ctx.Param("sectionId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, record)
}
