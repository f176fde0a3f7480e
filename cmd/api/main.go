package main

import "hypergo-properties/pkg/logger"

func main() {
	cfg := LoadConfiguration()
	defer logger.GlobalLogger.Sync()

	app := NewApp(cfg)
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
