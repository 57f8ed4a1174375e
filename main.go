package main

import (
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"
	"github.com/dancoopper/COMP3074-MobileApp/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
