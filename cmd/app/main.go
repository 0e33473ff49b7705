package main

import (
	"teammeet/config"
	"teammeet/di"
	"teammeet/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
