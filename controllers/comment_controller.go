package controllers

import (
	"net/http"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// CommentController — контроллер комментариев к местам
type CommentController struct {
	Service *services.CommentService
}

// ListComments godoc
// @Summary      Комментарии места
// @Description  Возвращает комментарии места, новые сверху
// @Tags         comments
// @Produce      json
// @Param        id   path      int  true  "ID места"
// @Success      200  {array}   models.Comment
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/place/{id} [get]
func (c *CommentController) ListComments(ctx *gin.Context) {
	placeID, ok := parseUint(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid place id"})
		return
	}
	comments, err := c.Service.ListByPlace(placeID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Добавить комментарий
// @Description  Добавляет комментарий к существующему месту, без авторизации
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id     path      int                   true  "ID места"
// @Param        input  body      dto.CreateCommentDTO  true  "Комментарий"
// @Success      201    {object}  models.Comment
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /comments/place/{id} [post]
func (c *CommentController) CreateComment(ctx *gin.Context) {
	placeID, ok := parseUint(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid place id"})
		return
	}

	var input dto.CreateCommentDTO
	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := c.Service.CreateComment(placeID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}
