package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"

	"erp/internal/database"
	"erp/internal/handlers"
	"erp/internal/middleware"
	"erp/internal/repositories"
	"erp/internal/services"
	"erp/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "erp_system.db")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.SetDefault("AUTH_USERS", "admin:admin123,user:user123,manager:manager123")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	dbDriver := viper.GetString("DB_DRIVER")
	dbDSN := viper.GetString("DB_DSN")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Database ---
	db, err := database.Open(dbDriver, dbDSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Credential table ---
	users := parseCredentials(viper.GetString("AUTH_USERS"))
	if len(users) == 0 {
		log.Fatalf("AUTH_USERS yielded no credentials")
	}
	verifier := services.NewStaticVerifier(users)

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set; order events disabled")
	}

	// --- Repositories ---
	customerRepo := repositories.NewGORMCustomerRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	invoiceRepo := repositories.NewGORMInvoiceRepository(db)

	// --- Services ---
	customerService := services.NewCustomerService(customerRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, invoiceRepo, publisher, rabbitmq.OrderEventsQueue)

	// --- Handlers ---
	customerHandler := handlers.NewCustomerHandler(customerService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	soapHandler := handlers.NewSOAPHandler(verifier, customerService, productService, orderService)
	webHandler := handlers.NewWebHandler()

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	// HTML pages and the SOAP surface register at the root; SOAP performs
	// its own credential check so it can answer with a fault envelope.
	webHandler.RegisterRoutes(app)
	soapHandler.RegisterRoutes(app)

	// REST API behind Basic authentication.
	api := app.Group("/api", middleware.BasicAuthRequired(verifier))
	customerHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)

	log.Println("============================================================")
	log.Println("ERP System with SOAP Support & Authentication")
	log.Printf("Web Dashboard: http://localhost%s/", appPort)
	log.Printf("Login Page:    http://localhost%s/login", appPort)
	log.Printf("WSDL:          http://localhost%s/wsdl", appPort)
	log.Printf("SOAP Endpoint: http://localhost%s/soap", appPort)
	log.Println("============================================================")

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// parseCredentials turns a "user:pass,user:pass" string into a credential
// table. Malformed entries are skipped with a warning.
func parseCredentials(raw string) map[string]string {
	users := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		idx := strings.Index(entry, ":")
		if idx <= 0 {
			log.Printf("Skipping malformed AUTH_USERS entry %q", entry)
			continue
		}
		users[entry[:idx]] = entry[idx+1:]
	}
	return users
}
