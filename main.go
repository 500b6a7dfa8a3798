package main

import (
	"fmt"
	"log"
	"os"

	"nilk-backend/config"
	"nilk-backend/controller"
	"nilk-backend/dao"
	"nilk-backend/logic"
	"nilk-backend/middleware"
	"nilk-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Initialize config
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run main.go <config.yaml>")
	}
	configFile := os.Args[1]
	if err := config.LoadConfig(configFile); err != nil {
		log.Fatalf("Failed to load config from %s: %v", configFile, err)
	}

	// Initialize database
	db, err := gorm.Open(postgres.Open(config.GlobalConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	db.AutoMigrate(&models.Profile{}, &models.EconomicEvent{})

	// Initialize DAOs
	profileDAO := dao.NewProfileDAO(db)
	eventDAO := dao.NewEconomicEventDAO(db)

	// Initialize Logics
	userLogic := logic.NewUserLogic(profileDAO)
	eventLogic := logic.NewEventLogic(profileDAO, eventDAO)

	// Initialize Controllers
	userCtrl := controller.NewUserController(userLogic)
	eventCtrl := controller.NewEventController(eventLogic)

	// Setup Gin router
	r := gin.Default()
	r.POST("/user/login", userCtrl.Login)
	r.GET("/profile", middleware.Auth, userCtrl.GetProfile)
	r.PUT("/profile/cows", middleware.Auth, userCtrl.UpdateCows)
	r.POST("/events", middleware.Auth, eventCtrl.Track)
	r.GET("/events", middleware.Auth, eventCtrl.List)

	// Run server
	if err := r.Run(fmt.Sprintf(":%d", config.GlobalConfig.Server.Port)); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
