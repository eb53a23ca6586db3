package controller

import (
	"quizkey_backend/internal/service"
	"quizkey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WrongAnswerController struct {
	WrongAnswerService *service.WrongAnswerService
}

func NewWrongAnswerController(wrongAnswerService *service.WrongAnswerService) *WrongAnswerController {
	return &WrongAnswerController{WrongAnswerService: wrongAnswerService}
}

type RecordWrongRequest struct {
	QuestionID uint `json:"question_id" binding:"required"`
}

// @Summary 记录错题
// @Description 同一题重复答错时累加错误次数
// @Tags 错题本
// @Accept json
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Param request body RecordWrongRequest true "题目 ID"
// @Success 200 {object} util.Response
// @Router /wrong-answers [post]
func (c *WrongAnswerController) Record(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req RecordWrongRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	wrong, err := c.WrongAnswerService.RecordWrong(p, req.QuestionID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, wrong)
}

// @Summary 错题列表
// @Description 按错误次数降序返回
// @Tags 错题本
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Success 200 {object} util.Response
// @Router /wrong-answers [get]
func (c *WrongAnswerController) List(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	wrongs, err := c.WrongAnswerService.List(p)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, wrongs)
}
