package controllers

import (
	"net/http"

	"github.com/IsMarshev/we-site/dto"
	middleware "github.com/IsMarshev/we-site/midellware"
	"github.com/IsMarshev/we-site/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// RegistController — контроллер для обработки запросов на регистрацию и вход
type RegistController struct {
	Service_regist *services.RegistService
	Service_auth   *services.AuthService
}

// RegisterUser godoc
// @Summary Register new user
// @Description Register a new user by providing username, email, and password
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserDTO true "User data"
// @Success 201 {object} models.User "Successfully created user"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Conflict - user already exists"
// @Router /auth/register [post]
func (controller *RegistController) RegisterUser(c *gin.Context) {
	var userDTO dto.RegisterUserDTO
	if err := c.ShouldBindBodyWith(&userDTO, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := controller.Service_regist.RegisterUser(userDTO)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// LoginUser godoc
// @Summary Login user and return JWT token
// @Description Login a user by providing username and password, and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginDTO true "User login data"
// @Success 200 {object} dto.TokenDTO "JWT token"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized - invalid credentials"
// @Router /auth/login [post]
func (controller *RegistController) LoginUser(c *gin.Context) {
	var loginDTO dto.LoginDTO
	if err := c.ShouldBindBodyWith(&loginDTO, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := controller.Service_auth.AuthenticateUser(loginDTO)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// Me godoc
// @Summary      Профиль текущего пользователя
// @Description  Возвращает профиль пользователя из токена
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
func (controller *RegistController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "could not validate credentials"})
		return
	}
	c.JSON(http.StatusOK, user)
}
