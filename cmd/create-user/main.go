package main

import (
	"flag"
	"log"

	"go-stockroom/internal/config"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/internal/storage"

	"github.com/joho/godotenv"
)

// Bootstraps a user directly against the data files, for setting up the
// first account before the signup endpoint is reachable.
func main() {
	username := flag.String("username", "", "username for the new account")
	password := flag.String("password", "", "password for the new account (min 6 characters)")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("Usage: create-user -username <name> -password <password>")
	}
	if len(*password) < 6 {
		log.Fatal("Password must be at least 6 characters")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()

	// 2. Setup Storage
	store := storage.New(cfg.DataDir)
	userRepo := repository.NewUserRepo(store)
	authService := service.NewAuthService(userRepo)

	// 3. Create the user
	user, err := authService.Signup(*username, *password)
	if err != nil {
		log.Fatalf("Failed to create user %s: %v", *username, err)
	}

	log.Printf("Success! User %s created with id %s", user.Username, user.ID)
}
