package main

import (
	"encoding/gob"

	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/controllers"
	"github.com/vaporhouse-br/VaporHouse/routes"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

func main() {
	if err := utils.InitLogger(); err != nil {
		panic(err)
	}
	utils.LogInfo("Starting VaporHouse server")

	// Pending registrations are stored in the cookie session
	gob.Register(controllers.RegistrationData{})

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Failed to load config: %v", err)
		panic(err)
	}

	config.InitDB()
	config.InitRedis()
	config.InitGoogleOAuth()
	controllers.EnsureDefaultAdmin()

	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Listening on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Server exited: %v", err)
		panic(err)
	}
}
