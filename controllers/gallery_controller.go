package controllers

import (
	"net/http"

	"github.com/IsMarshev/we-site/dto"
	middleware "github.com/IsMarshev/we-site/midellware"
	"github.com/IsMarshev/we-site/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// GalleryController — контроллер галереи изображений
type GalleryController struct {
	Service          *services.GalleryService
	Service_reaction *services.ReactionService
}

// ListGallery godoc
// @Summary      Галерея
// @Description  Возвращает изображения галереи, новые сверху
// @Tags         gallery
// @Produce      json
// @Success      200  {array}   models.GalleryImage
// @Failure      500  {object}  ErrorResponse
// @Router       /gallery [get]
func (c *GalleryController) ListGallery(ctx *gin.Context) {
	images, err := c.Service.ListImages()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, images)
}

// AddImageByURL godoc
// @Summary      Добавить изображение по ссылке
// @Description  Добавляет изображение в галерею по внешнему URL. Только для админа
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      dto.CreateGalleryURLDTO  true  "Данные изображения"
// @Success      201    {object}  models.GalleryImage
// @Failure      400    {object}  ErrorResponse
// @Failure      403    {object}  ErrorResponse
// @Router       /gallery/url [post]
func (c *GalleryController) AddImageByURL(ctx *gin.Context) {
	var input dto.CreateGalleryURLDTO
	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	admin := middleware.CurrentUser(ctx)
	if admin == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "could not validate credentials"})
		return
	}

	image, err := c.Service.AddImageByURL(admin, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, image)
}

// UploadImage godoc
// @Summary      Загрузить изображение
// @Description  Принимает файл и добавляет его в галерею. Только для админа
// @Tags         gallery
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file   formData  file    true   "Файл изображения"
// @Param        title  formData  string  false  "Название"
// @Success      201    {object}  models.GalleryImage
// @Failure      400    {object}  ErrorResponse
// @Failure      403    {object}  ErrorResponse
// @Router       /gallery/upload [post]
func (c *GalleryController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}

	admin := middleware.CurrentUser(ctx)
	if admin == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "could not validate credentials"})
		return
	}

	var title *string
	if v := ctx.PostForm("title"); v != "" {
		title = &v
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	image, err := c.Service.UploadImage(admin, fileHeader.Filename, file, title)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, image)
}

// GetImageReactions godoc
// @Summary      Реакции изображения
// @Description  Счётчики лайков и дизлайков изображения; my заполняется только для авторизованных
// @Tags         gallery
// @Produce      json
// @Param        id   path      int  true  "ID изображения"
// @Success      200  {object}  dto.ReactionCountsDTO
// @Failure      500  {object}  ErrorResponse
// @Router       /gallery/{id}/reactions [get]
func (c *GalleryController) GetImageReactions(ctx *gin.Context) {
	imageID, ok := parseUint(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image id"})
		return
	}

	// Анонимного пути у галереи нет: без токена my остаётся пустым
	var subject services.Subject
	if user := middleware.CurrentUser(ctx); user != nil {
		subject = services.UserSubject(user.ID)
	}

	counts, err := c.Service_reaction.GetGalleryReactions(imageID, subject)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}

// ReactImage godoc
// @Summary      Голосовать за изображение
// @Description  Переключает лайк/дизлайк изображения. Только для авторизованных
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int                   true  "ID изображения"
// @Param        input  body      dto.ReactionInputDTO  true  "Реакция"
// @Success      200    {object}  dto.ReactionCountsDTO
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /gallery/{id}/react [put]
func (c *GalleryController) ReactImage(ctx *gin.Context) {
	imageID, ok := parseUint(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image id"})
		return
	}

	var input dto.ReactionInputDTO
	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user := middleware.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "could not validate credentials"})
		return
	}

	counts, err := c.Service_reaction.ReactGallery(imageID, services.UserSubject(user.ID), input.Value)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}
