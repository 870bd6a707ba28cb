package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/oatsaysai/guild-bank-in-discord/internal/bank"
	"github.com/oatsaysai/guild-bank-in-discord/internal/config"
	"github.com/oatsaysai/guild-bank-in-discord/internal/discord"
	"github.com/oatsaysai/guild-bank-in-discord/internal/store"
	"github.com/spf13/viper"
)

func main() {
	// Initialize configuration
	config.Initialize()

	// Initialize the storage backend
	var (
		balances store.BalanceStore
		requests store.RequestStore
	)
	switch backend := viper.GetString("Storage.Backend"); backend {
	case "postgres":
		pg, err := store.NewPostgresStore()
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL store: %v", err)
		}
		if err := pg.Migrate(); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		defer pg.Close()
		balances, requests = pg, pg
	case "file":
		fs := store.NewFileStore(
			viper.GetString("Storage.BalancesFile"),
			viper.GetString("Storage.RequestsFile"),
		)
		balances, requests = fs, fs
	default:
		log.Fatalf("Unknown storage backend: %s", backend)
	}

	// Wire the bank into the discord handlers
	discord.SetBank(bank.New(balances, requests))

	// Initialize Discord bot
	if err := discord.Initialize(viper.GetString("DiscordBot.Token")); err != nil {
		log.Fatalf("Failed to initialize Discord bot: %v", err)
	}
	defer discord.Close()

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle termination signals
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalChan
		log.Println("Received termination signal, shutting down gracefully...")
		cancel()
	}()

	log.Println("Guild bank bot is now running. Press CTRL+C to exit.")
	// Keep the application running until context is cancelled
	<-ctx.Done()
	log.Println("Guild bank bot shutting down...")
}
