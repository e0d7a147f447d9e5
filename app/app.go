package app

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gig-marketplace-api/internal/controller"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/security"
	"gig-marketplace-api/internal/service"
	"gig-marketplace-api/pkg/http_server"
	"gig-marketplace-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/labstack/echo"
)

const defaultTokenTTL = 24 * time.Hour

func runMigrations(postgresDB *postgres.Postgres, databaseName string) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		log.Fatal(err)
	}

	migrations, err := migrate.NewWithDatabaseInstance("file://migrations", databaseName, driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrations.Up(); err != nil {
		if err.Error() == "no change" {
			log.Println("no change made by migration scripts")
		} else {
			log.Fatal(err)
		}
	}
}

func tokenTTL() time.Duration {
	raw := os.Getenv("JWT_TTL")
	if raw == "" {
		return defaultTokenTTL
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid JWT_TTL %q, using default", raw)

		return defaultTokenTTL
	}

	return ttl
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:5173"}
	}

	return strings.Split(raw, ",")
}

func Run() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	serverAddressEnv := os.Getenv("SERVER_ADDRESS")
	dbConnEnv := os.Getenv("POSTGRES_CONN")
	databaseEnv := os.Getenv("POSTGRES_DATABASE")
	jwtSecretEnv := os.Getenv("JWT_SECRET")

	if jwtSecretEnv == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	log.Println("Connecting database...")
	postgresDB, err := postgres.NewDB(dbConnEnv)
	if err != nil {
		log.Fatal("Error occurred while connecting to db: ", err)
	}
	defer postgresDB.Close()

	log.Println("Running migrations...")
	runMigrations(postgresDB, databaseEnv)

	repositories := repo.NewRepositories(postgresDB)
	tokens := security.NewTokenProvider(jwtSecretEnv, tokenTTL())
	services := service.NewServices(repositories, tokens)
	handler := echo.New()

	log.Println("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, tokens, corsOrigins())

	log.Println("Starting server...")
	httpServer := http_server.New(handler, serverAddressEnv)

	log.Println("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.Fatal("Notify error: ", err)
	}

	log.Println("Shutting down...")
	err = httpServer.Shutdown()
	if err != nil {
		log.Fatal("Shutdown error: ", err)
	} else {
		log.Println("Successful shutdown")
	}
}
