package main

import (
	"os"

	"github.com/DRSN-tech/store-backend/internal/app"
	config "github.com/DRSN-tech/store-backend/internal/cfg"
	"github.com/DRSN-tech/store-backend/pkg/logger"
)

//	@title						Store Backend API
//	@version					1.0
//	@description				Каталог товаров, пользователи, заказы и отзывы магазина.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer <token>
func main() {
	log := logger.FromEnv()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
