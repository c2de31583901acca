/**
 * @description
 * This is the main entry point for the reference-data service. Its
 * responsibility is to initialize all necessary components: the database
 * connection pool, the repositories and services, the RabbitMQ producer and
 * the batch assignment import consumer, and the HTTP server.
 *
 * Key features:
 * - Loads application configuration from environment variables.
 * - Establishes and manages a connection pool to the PostgreSQL database.
 * - Wires up the core services with their repositories and the event producer.
 * - Starts the assignment import consumer and implements graceful shutdown.
 *
 * @dependencies
 * - The service's internal packages for config, app logic, storage and API.
 * - pgxpool for database connection, godotenv for local config, and rabbitmq
 *   for messaging.
 */
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/lexref/pup-service/internal/api"
	"github.com/lexref/pup-service/internal/app"
	"github.com/lexref/pup-service/internal/config"
	"github.com/lexref/pup-service/internal/store"
	"github.com/lexref/pup-service/pkg/rabbitmq"
)

func main() {
	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load application configuration.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	// Establish database connection pool.
	dbConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to parse database URL: %v\n", err)
	}
	dbConfig.MaxConns = 25
	dbConfig.MinConns = 5
	dbConfig.MaxConnLifetime = 30 * time.Minute
	dbConfig.MaxConnIdleTime = 5 * time.Minute

	dbpool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer dbpool.Close()
	log.Println("Database connection established")

	// Event producer, with a logging fallback when the broker is down.
	var publisher rabbitmq.Publisher
	if cfg.RabbitMQURL != "" {
		producer, err := rabbitmq.NewEventProducer(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("Failed to connect event producer, falling back to log-only publishing: %v", err)
			publisher = &rabbitmq.EventProducerFallback{}
		} else {
			publisher = producer
		}
	} else {
		publisher = &rabbitmq.EventProducerFallback{}
	}
	defer publisher.Close()

	// Set up dependencies.
	orgRepo := store.NewPostgresOrganisationRepository(dbpool)
	userRepo := store.NewPostgresProfessionalUserRepository(dbpool)
	accountRepo := store.NewPostgresPaymentAccountRepository(dbpool)
	addressTypeRepo := store.NewPostgresAddressTypeRepository(dbpool)

	// Setup services
	orgService := app.NewOrganisationService(orgRepo, publisher)
	userService := app.NewProfessionalUserService(userRepo, accountRepo, publisher)
	accountService := app.NewPaymentAccountService(accountRepo, userService, publisher)
	addressTypeService := app.NewAddressTypeService(addressTypeRepo)
	importHandler := app.NewAssignmentImportHandler(accountService)

	// Setup the batch assignment import consumer.
	if cfg.RabbitMQURL != "" {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("Failed to connect import consumer, batch import disabled: %v", err)
		} else {
			defer consumer.Close()
			go func() {
				log.Printf("Starting consumer for queue '%s'...", cfg.ImportQueue)
				err := consumer.Consume(cfg.ImportExchange, cfg.ImportQueue, cfg.ImportRoutingKey, importHandler.HandleAssignmentRow)
				if err != nil {
					log.Printf("Consumer error: %v", err) // Log as non-fatal
				}
			}()
		}
	}

	// Setup and start HTTP server.
	router := api.NewRouter(cfg, dbpool, api.Services{
		Organisations: orgService,
		Users:         userService,
		Accounts:      accountService,
		AddressTypes:  addressTypeService,
	})
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %s\n", err)
		}
	}()

	log.Println("Reference-data service is running with API and import consumer.")

	// Wait for termination signal for graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down service...")

	// Create a context with a timeout for shutdown.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the HTTP server.
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server gracefully stopped")
}
