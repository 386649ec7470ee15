package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/pizzeria-orders-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/config"
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/controllers"
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/database"
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/middleware"
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                 *gorm.DB
	pizzeriaController controllers.PizzeriaController
	menuController     controllers.MenuController
	personController   controllers.PersonController
	orderController    controllers.OrderController
	configuration      *config.Config
)

// @title Pizzeria Orders API
// @version 1.0
// @description Multi-pizzeria ordering backend: pizzerias, menus, persons and orders
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	pizzeriaController = controllers.NewPizzeriaController(services.NewPizzeriaService(db))
	menuController = controllers.NewMenuController(services.NewMenuService(db))
	personController = controllers.NewPersonController(services.NewPersonService(db))
	orderController = controllers.NewOrderController(services.NewOrderService(db))

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema and
// seeds initial data when the store is empty
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(&models.Person{}, &models.Pizzeria{}, &models.MenuItem{}, &models.Order{})
	checkPanicErr(err)

	// Seed only if the store is empty
	var count int64
	db.Model(&models.Pizzeria{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the database with initial data. Persons are normally
// provisioned by an external system; the seed stands in for it in local runs.
func seedDatabase() {
	persons := []models.Person{
		{Name: "Anna Petrova", Age: 29, Gender: "female", Address: "12 Baker Street"},
		{Name: "Ivan Sidorov", Age: 41, Gender: "male", Address: "3 Elm Avenue"},
		{Name: "Maria Lopez", Age: 34, Gender: "female", Address: "78 Ocean Drive"},
	}
	for _, person := range persons {
		db.Create(&person)
	}

	pizzerias := []models.Pizzeria{
		{Name: "Mario's", Rating: 4.5},
		{Name: "Napoli Express", Rating: 4.0},
	}
	for _, pizzeria := range pizzerias {
		db.Create(&pizzeria)
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	api := router.Group("/api")
	{
		api.GET("/persons", personController.ListPersons)
		api.GET("/pizzeria", pizzeriaController.ListPizzerias)
		api.POST("/pizzeria", pizzeriaController.CreatePizzeria)
		api.POST("/pizzeria/change/rating/:id", pizzeriaController.ChangeRating)
		api.DELETE("/pizzeria/:id", pizzeriaController.DeletePizzeria)

		api.GET("/menu/:id", menuController.GetMenu)
		api.POST("/menu/:pizzeria_id", menuController.CreateMenuItem)
		api.POST("/menu/change/price/:id", menuController.ChangePrice)
		api.DELETE("/menu/:id", menuController.DeleteMenuItem)

		api.GET("/person/:id/orders", orderController.ListOrders)
		api.POST("/person/:id/order", orderController.CreateOrder)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizzeria-orders-api",
	})
}
