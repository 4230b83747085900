package main

import (
	"flag"
	"fmt"
	"github.com/half-nothing/airline-staff-portal/internal/base"
	"github.com/half-nothing/airline-staff-portal/internal/database"
	"github.com/half-nothing/airline-staff-portal/internal/http_server"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/global"
	"golang.org/x/crypto/bcrypt"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

// printPasswordHash prints the hash to store in airline_staff.password.
func printPasswordHash(password string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	fmt.Println(string(hash))
	return nil
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	configManager := base.NewManager(logger)

	if *global.HashPassword != "" {
		if err := printPasswordHash(*global.HashPassword, configManager.Config().Server.General.BcryptCost); err != nil {
			logger.FatalF("Error occurred while hashing password, details: %v", err)
		}
		return
	}

	logger.InfoF("Staff portal %s initializing...", global.AppVersion)

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	config := configManager.Config()

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing operation, details: %v", err)
		return
	}

	cleaner.Add(shutdownCallback)

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation)

	http_server.StartHttpServer(applicationContent)
}
