package main

import (
	"github.com/chmielvu/endecja-graph/internal/server"
	"github.com/chmielvu/endecja-graph/internal/util"
	"github.com/chmielvu/endecja-graph/pkg/logger"
	"github.com/chmielvu/endecja-graph/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
