package main

import (
	"fmt"

	"github.com/boituva/beachclub/internal/app"
	"github.com/boituva/beachclub/internal/config"
	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/storage"
)

func main() {
	// load config
	config := config.NewConfig()
	// init logger
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// open the database and run migrations
	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't open database:", err)
	}
	defer db.Close()
	if err := db.Initialize(); err != nil {
		logger.Panic("can't initialize database:", err)
	}
	// run the service
	app.Run(config, storage.NewStorage(db))
}
