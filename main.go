package main

import (
	"log"
	"os"
	"strings"

	"github.com/IsMarshev/we-site/controllers"
	"github.com/IsMarshev/we-site/database"
	docs "github.com/IsMarshev/we-site/docs"
	middleware "github.com/IsMarshev/we-site/midellware"
	"github.com/IsMarshev/we-site/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Cape Town Travel API
// @version 1.0.0

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Инициализация подключения к базе данных и миграции
	database.InitDB()
	db := database.GetDB()

	// Первоначальное наполнение не должно ронять запуск
	if err := database.SeedInitialData(db); err != nil {
		log.Printf("Ошибка первоначального наполнения базы: %v", err)
	}

	// Инициализация сервисов
	registService := &services.RegistService{DB: db}
	authService := &services.AuthService{DB: db}
	placeService := &services.PlaceService{DB: db}
	commentService := &services.CommentService{DB: db}
	contactService := &services.ContactService{DB: db}
	reactionService := &services.ReactionService{DB: db}
	galleryService := &services.GalleryService{
		DB:        db,
		UploadDir: services.DefaultUploadDir(),
	}

	// Инициализация контроллеров
	registController := &controllers.RegistController{
		Service_regist: registService,
		Service_auth:   authService,
	}
	placeController := &controllers.PlaceController{
		Service:          placeService,
		Service_reaction: reactionService,
	}
	commentController := &controllers.CommentController{Service: commentService}
	contactController := &controllers.ContactController{Service: contactService}
	galleryController := &controllers.GalleryController{
		Service:          galleryService,
		Service_reaction: reactionService,
	}

	// Настройка маршрутов и Swagger документации
	r := gin.Default()
	r.Use(corsMiddleware())
	docs.SwaggerInfo.BasePath = "/api"

	v1 := r.Group("/api")

	// Открытые маршруты
	auth := v1.Group("/auth")
	{
		auth.POST("/register", registController.RegisterUser)
		auth.POST("/login", registController.LoginUser)
		auth.GET("/me", middleware.AuthMiddleware(db), registController.Me)
	}

	places := v1.Group("/places")
	{
		places.GET("", placeController.ListPlaces)
		places.GET("/:id", placeController.GetPlace)
		places.POST("", middleware.AuthMiddleware(db), placeController.CreatePlace)
		places.PUT("/:id", middleware.AuthMiddleware(db), placeController.UpdatePlace)
		places.DELETE("/:id", middleware.AuthMiddleware(db), placeController.DeletePlace)

		// Реакции доступны и анонимам с client_id
		places.GET("/:id/reactions", middleware.OptionalAuthMiddleware(db), placeController.GetPlaceReactions)
		places.PUT("/:id/react", middleware.OptionalAuthMiddleware(db), placeController.ReactPlace)
	}

	comments := v1.Group("/comments")
	{
		comments.GET("/place/:id", commentController.ListComments)
		comments.POST("/place/:id", commentController.CreateComment)
	}

	contacts := v1.Group("/contacts")
	{
		contacts.GET("", contactController.ListContacts)
		contacts.POST("", contactController.CreateContact)
	}

	gallery := v1.Group("/gallery")
	{
		gallery.GET("", galleryController.ListGallery)
		gallery.POST("/url", middleware.AuthMiddleware(db), middleware.AdminMiddleware(), galleryController.AddImageByURL)
		gallery.POST("/upload", middleware.AuthMiddleware(db), middleware.AdminMiddleware(), galleryController.UploadImage)

		// Анонимного голосования у галереи нет, react только с токеном
		gallery.GET("/:id/reactions", middleware.OptionalAuthMiddleware(db), galleryController.GetImageReactions)
		gallery.PUT("/:id/react", middleware.AuthMiddleware(db), galleryController.ReactImage)
	}

	// Загруженные файлы раздаются статикой
	r.Static("/uploads", galleryService.UploadDir)

	// Маршрут для Swagger документации
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// Запуск сервера
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

// corsMiddleware настраивает CORS по списку разрешённых источников
// из CT_ALLOWED_ORIGINS (по умолчанию открыто для всех)
func corsMiddleware() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowCredentials = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")

	origins := os.Getenv("CT_ALLOWED_ORIGINS")
	if origins == "" || origins == "*" {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = strings.Split(origins, ",")
	}
	return cors.New(config)
}
