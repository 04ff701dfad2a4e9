package main

import (
	"log"

	"github.com/ibeloyar/fueldispatch/internal/app"
	"github.com/ibeloyar/fueldispatch/internal/config"
	"github.com/ibeloyar/fueldispatch/pgk/logger"
	"github.com/joho/godotenv"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	// .env необязателен, переменные окружения процесса имеют приоритет
	if err := godotenv.Load(); err != nil {
		lg.Debugf("no .env file loaded: %v", err)
	}

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.Run(cfg, lg); err != nil {
		lg.Fatal(err)
	}
}
