package controllers

import (
	"net/http"

	"github.com/IsMarshev/we-site/dto"
	middleware "github.com/IsMarshev/we-site/midellware"
	"github.com/IsMarshev/we-site/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// PlaceController — контроллер для обработки запросов каталога мест
type PlaceController struct {
	Service          *services.PlaceService
	Service_reaction *services.ReactionService
}

// ListPlaces godoc
// @Summary      Список мест
// @Description  Возвращает каталог мест в порядке возрастания id
// @Tags         places
// @Produce      json
// @Success      200  {array}   models.Place
// @Failure      500  {object}  ErrorResponse
// @Router       /places [get]
func (c *PlaceController) ListPlaces(ctx *gin.Context) {
	places, err := c.Service.ListPlaces()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, places)
}

// GetPlace godoc
// @Summary      Карточка места
// @Description  Возвращает место вместе с комментариями
// @Tags         places
// @Produce      json
// @Param        id   path      int  true  "ID места"
// @Success      200  {object}  models.Place
// @Failure      404  {object}  ErrorResponse
// @Router       /places/{id} [get]
func (c *PlaceController) GetPlace(ctx *gin.Context) {
	placeID, ok := parseUint(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid place id"})
		return
	}
	place, err := c.Service.GetPlace(placeID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, place)
}

// CreatePlace godoc
// @Summary      Добавить место
// @Description  Создаёт место от имени авторизованного пользователя
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      dto.CreatePlaceDTO  true  "Данные места"
// @Success      201    {object}  models.Place
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Router       /places [post]
func (c *PlaceController) CreatePlace(ctx *gin.Context) {
	var input dto.CreatePlaceDTO
	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user := middleware.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "could not validate credentials"})
		return
	}

	place, err := c.Service.CreatePlace(user, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, place)
}

// UpdatePlace godoc
// @Summary      Обновить место
// @Description  Частичное обновление: применяются только переданные поля. Доступно создателю и админу
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int                 true  "ID места"
// @Param        input  body      dto.UpdatePlaceDTO  true  "Изменяемые поля"
// @Success      200    {object}  models.Place
// @Failure      403    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /places/{id} [put]
func (c *PlaceController) UpdatePlace(ctx *gin.Context) {
	placeID, ok := parseUint(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid place id"})
		return
	}

	var input dto.UpdatePlaceDTO
	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user := middleware.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "could not validate credentials"})
		return
	}

	place, err := c.Service.UpdatePlace(user, placeID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, place)
}

// DeletePlace godoc
// @Summary      Удалить место
// @Description  Удаляет место вместе с комментариями. Доступно создателю и админу
// @Tags         places
// @Security     BearerAuth
// @Param        id   path  int  true  "ID места"
// @Success      204  {object}  nil
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /places/{id} [delete]
func (c *PlaceController) DeletePlace(ctx *gin.Context) {
	placeID, ok := parseUint(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid place id"})
		return
	}

	user := middleware.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "could not validate credentials"})
		return
	}

	if err := c.Service.DeletePlace(user, placeID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetPlaceReactions godoc
// @Summary      Реакции места
// @Description  Счётчики лайков и дизлайков; поле my — собственная реакция запрашивающего
// @Tags         places
// @Produce      json
// @Param        id         path   int     true   "ID места"
// @Param        client_id  query  string  false  "Токен анонимного клиента"
// @Success      200  {object}  dto.ReactionCountsDTO
// @Failure      500  {object}  ErrorResponse
// @Router       /places/{id}/reactions [get]
func (c *PlaceController) GetPlaceReactions(ctx *gin.Context) {
	placeID, ok := parseUint(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid place id"})
		return
	}

	// Авторизованный пользователь имеет приоритет перед client_id
	subject := services.AnonymousSubject(ctx.Query("client_id"))
	if user := middleware.CurrentUser(ctx); user != nil {
		subject = services.UserSubject(user.ID)
	}

	counts, err := c.Service_reaction.GetPlaceReactions(placeID, subject)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}

// ReactPlace godoc
// @Summary      Голосовать за место
// @Description  Переключает лайк/дизлайк. Повторная одинаковая реакция снимает голос. Анониму нужен client_id
// @Tags         places
// @Accept       json
// @Produce      json
// @Param        id     path      int                   true  "ID места"
// @Param        input  body      dto.ReactionInputDTO  true  "Реакция"
// @Success      200    {object}  dto.ReactionCountsDTO
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /places/{id}/react [put]
func (c *PlaceController) ReactPlace(ctx *gin.Context) {
	placeID, ok := parseUint(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid place id"})
		return
	}

	var input dto.ReactionInputDTO
	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subject := services.AnonymousSubject(input.ClientID)
	if user := middleware.CurrentUser(ctx); user != nil {
		subject = services.UserSubject(user.ID)
	}

	counts, err := c.Service_reaction.ReactPlace(placeID, subject, input.Value)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}
