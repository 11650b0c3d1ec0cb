package controllers

import (
	"net/http"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ContactController — контроллер формы обратной связи
type ContactController struct {
	Service *services.ContactService
}

// CreateContact godoc
// @Summary      Отправить сообщение
// @Description  Сохраняет сообщение обратной связи, без авторизации
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        input  body      dto.CreateContactDTO  true  "Сообщение"
// @Success      201    {object}  models.ContactMessage
// @Failure      400    {object}  ErrorResponse
// @Router       /contacts [post]
func (c *ContactController) CreateContact(ctx *gin.Context) {
	var input dto.CreateContactDTO
	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	msg, err := c.Service.CreateContact(input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, msg)
}

// ListContacts godoc
// @Summary      Список сообщений
// @Description  Возвращает сообщения обратной связи, новые сверху
// @Tags         contacts
// @Produce      json
// @Success      200  {array}   models.ContactMessage
// @Failure      500  {object}  ErrorResponse
// @Router       /contacts [get]
func (c *ContactController) ListContacts(ctx *gin.Context) {
	messages, err := c.Service.ListContacts()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, messages)
}
