package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"orders/cmd"
	httpserver "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/kafka"
	"orders/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	publisher := kafka.NewOrderEventPublisher([]string{configs.KafkaHost}, configs.KafkaOrderCreatedTopic)
	defer func() {
		_ = publisher.Close()
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderCreatedTopic: goDotEnvVariable("KAFKA_ORDER_CREATED_TOPIC"),
		StalePendingTTL:        stalePendingTTL(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func stalePendingTTL() time.Duration {
	raw := goDotEnvVariable("STALE_PENDING_TTL")
	if raw == "" {
		return 30 * time.Minute
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid STALE_PENDING_TTL: %v", err)
	}
	return ttl
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateDeliverOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
