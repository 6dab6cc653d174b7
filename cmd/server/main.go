package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/evn/eom_salary/config"
	"github.com/evn/eom_salary/db"
	"github.com/evn/eom_salary/internal/repositories"
	"github.com/evn/eom_salary/internal/routes"
	salaryService "github.com/evn/eom_salary/internal/services/salary"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	cfg := config.NewConfig()
	database := db.InitDB(cfg.DatabaseDSN)
	defer database.Close()

	redisClient := config.NewRedisClient()
	defer redisClient.Close()

	f, err := salaryService.BuildFeeds(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации источников: %v", err)
	}

	svc := salaryService.NewService(cfg, redisClient, f,
		repositories.NewDailyShiftRepository(database),
		repositories.NewSalaryRepository(database))

	router := routes.Setup(database, redisClient, svc)

	serverAddress := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("🚀 Server starting on %s", serverAddress)
	log.Fatal(http.ListenAndServe(serverAddress, router))
}
