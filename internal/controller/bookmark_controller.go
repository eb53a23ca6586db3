package controller

import (
	"strconv"

	"quizkey_backend/internal/service"
	"quizkey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BookmarkController struct {
	BookmarkService *service.BookmarkService
}

func NewBookmarkController(bookmarkService *service.BookmarkService) *BookmarkController {
	return &BookmarkController{BookmarkService: bookmarkService}
}

type AddBookmarkRequest struct {
	QuestionID uint `json:"question_id" binding:"required"`
}

// @Summary 收藏题目
// @Description 幂等操作，重复收藏不产生第二条记录
// @Tags 收藏
// @Accept json
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Param request body AddBookmarkRequest true "题目 ID"
// @Success 201 {object} util.Response
// @Router /bookmarks [post]
func (c *BookmarkController) Add(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req AddBookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.BookmarkService.Add(p, req.QuestionID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"question_id": req.QuestionID})
}

// @Summary 取消收藏
// @Tags 收藏
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Param questionId path int true "题目 ID"
// @Success 200 {object} util.Response
// @Router /bookmarks/{questionId} [delete]
func (c *BookmarkController) Remove(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	questionID, err := strconv.ParseUint(ctx.Param("questionId"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	if err := c.BookmarkService.Remove(p, uint(questionID)); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 收藏列表
// @Tags 收藏
// @Produce json
// @Param X-License-Key header string true "激活码"
// @Success 200 {object} util.Response
// @Router /bookmarks [get]
func (c *BookmarkController) List(ctx *gin.Context) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	bookmarks, err := c.BookmarkService.List(p)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, bookmarks)
}
