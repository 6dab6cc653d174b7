package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/evn/eom_salary/config"
	"github.com/evn/eom_salary/db"
	"github.com/evn/eom_salary/internal/repositories"
	salaryService "github.com/evn/eom_salary/internal/services/salary"
)

// Ночной расчет зарплаты: один прогон и выход. Запускается кроном.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	cfg := config.NewConfig()
	database := db.InitDB(cfg.DatabaseDSN)
	defer database.Close()

	redisClient := config.NewRedisClient()
	defer redisClient.Close()

	ctx := context.Background()
	f, err := salaryService.BuildFeeds(ctx, cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации источников: %v", err)
	}

	svc := salaryService.NewService(cfg, redisClient, f,
		repositories.NewDailyShiftRepository(database),
		repositories.NewSalaryRepository(database))

	if err := svc.Run(ctx); err != nil {
		log.Fatalf("❌ Расчет зарплаты завершился с ошибкой: %v", err)
	}
	log.Println("✅ Расчет зарплаты завершен")
}
