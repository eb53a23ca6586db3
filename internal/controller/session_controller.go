package controller

import (
	"quizkey_backend/internal/service"
	"quizkey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

type StartSessionRequest struct {
	QuestionIDs   []uint `json:"question_ids" binding:"required,min=1"`
	IsStudyMode   bool   `json:"is_study_mode"`
	TimeRemaining *int   `json:"time_remaining"`
}

type RecordAnswerRequest struct {
	QuestionID    uint `json:"question_id" binding:"required"`
	IsCorrect     bool `json:"is_correct"`
	TimeRemaining *int `json:"time_remaining"`
}

// @Summary 开卷
// @Description 为该章节建立新的答题现场；已有未答完的现场会被替换
// @Tags 答题现场
// @Accept json
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Param sectionId path string true "章节 ID"
// @Param request body StartSessionRequest true "题目顺序与模式"
// @Success 201 {object} util.Response
// @Router /sections/{sectionId}/session [post]
func (c *SessionController) Start(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sess, err := c.SessionService.Start(p, ctx.Param("sectionId"), req.QuestionIDs, req.IsStudyMode, req.TimeRemaining)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, sess)
}

// @Summary 记一题
// @Description 追加到答过集合并前移题位；重复提交同一题返回 409
// @Tags 答题现场
// @Accept json
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Param sectionId path string true "章节 ID"
// @Param request body RecordAnswerRequest true "答题结果"
// @Success 200 {object} util.Response
// @Router /sections/{sectionId}/session/answers [post]
func (c *SessionController) RecordAnswer(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sess, err := c.SessionService.RecordAnswer(p, ctx.Param("sectionId"), req.QuestionID, req.IsCorrect, req.TimeRemaining)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, sess)
}

// @Summary 续卷
// @Description 中断后取回现场，重建答题界面
// @Tags 答题现场
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Param sectionId path string true "章节 ID"
// @Success 200 {object} util.Response
// @Router /sections/{sectionId}/session [get]
func (c *SessionController) Resume(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	sess, err := c.SessionService.Resume(p, ctx.Param("sectionId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, sess)
}

// @Summary 结卷
// @Description 把现场得分合并进进度表并清掉现场
// @Tags 答题现场
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Param sectionId path string true "章节 ID"
// @Success 200 {object} util.Response
// @Router /sections/{sectionId}/session/finish [post]
func (c *SessionController) Finish(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.SessionService.Finish(p, ctx.Param("sectionId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, record)
}
