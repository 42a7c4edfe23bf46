package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/cmd"
	adapterhttp "github.com/NotMikev/awesome-pizza-manager/internal/adapters/in/http"
	"github.com/NotMikev/awesome-pizza-manager/internal/adapters/out/postgres/auditrepo"
	"github.com/NotMikev/awesome-pizza-manager/internal/adapters/out/postgres/purchaserepo"
	"github.com/NotMikev/awesome-pizza-manager/internal/jobs"

	_ "github.com/NotMikev/awesome-pizza-manager/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoswagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultMaxPendingAge = 15 * time.Minute

//	@title			Awesome Pizza Manager API
//	@version		1.0
//	@description	Pizza order lifecycle with a full audit trail of every API call.

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()
	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateGetPendingPurchasesQueryHandler(),
		maxPendingAge(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		QueueMaxPendingAge: goDotEnvVariable("QUEUE_MAX_PENDING_AGE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&purchaserepo.PurchaseDTO{}, &auditrepo.RecordDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func maxPendingAge(configs cmd.Config) time.Duration {
	if configs.QueueMaxPendingAge == "" {
		return defaultMaxPendingAge
	}

	age, err := time.ParseDuration(configs.QueueMaxPendingAge)
	if err != nil {
		log.Fatalf("Invalid QUEUE_MAX_PENDING_AGE: %v", err)
	}
	return age
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HTTPErrorHandler = adapterhttp.NewHTTPErrorHandler()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	server := adapterhttp.NewServer(
		app.CreateCreatePurchaseCommandHandler(),
		app.CreateTakeNextPurchaseCommandHandler(),
		app.CreateTakePurchaseByCodeCommandHandler(),
		app.CreateMarkPurchaseReadyCommandHandler(),
		app.CreateCheckPurchaseStatusQueryHandler(),
		app.CreateGetAuditRecordQueryHandler(),
	)

	api := e.Group("/api", adapterhttp.AuditMiddleware(app.CreateLogAPICallCommandHandler()))
	server.RegisterRoutes(api, e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
