package middleware

import (
	"net/http"
	"strings"

	"github.com/IsMarshev/we-site/models"
	"github.com/IsMarshev/we-site/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Ключ, под которым пользователь лежит в контексте gin
const currentUserKey = "currentUser"

// AuthMiddleware — middleware для проверки JWT токена. Запрос без
// валидного токена или с субъектом, не разрешающимся в пользователя,
// отклоняется с 401.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveUser(c, db)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}

		// Если токен валиден, продолжаем выполнение запроса
		c.Set(currentUserKey, user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// OptionalAuthMiddleware — как AuthMiddleware, но любой сбой (нет
// заголовка, плохой токен, неизвестный субъект) даёт анонимный запрос
// вместо ошибки. Используется на эндпоинтах реакций.
func OptionalAuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := resolveUser(c, db); user != nil {
			c.Set(currentUserKey, user)
			c.Set("userID", user.ID)
		}
		c.Next()
	}
}

// AdminMiddleware — пускает дальше только администратора.
// Вешается после AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser возвращает пользователя из контекста, nil для анонима
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// resolveUser извлекает bearer-токен и разрешает его субъект
// в запись пользователя
func resolveUser(c *gin.Context, db *gorm.DB) *models.User {
	// Токен в заголовке должен быть в формате: "Bearer <token>"
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}

	username, err := utils.ValidateToken(parts[1])
	if err != nil {
		return nil
	}

	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil
	}
	return &user
}
