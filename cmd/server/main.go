// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joho/godotenv"

	authv1 "github.com/planmaster/planmaster/api/proto/auth/v1/generated"
	planv1 "github.com/planmaster/planmaster/api/proto/plan/v1/generated"
	ent "github.com/planmaster/planmaster/ent/generated"
	"github.com/planmaster/planmaster/ent/generated/migrate"
	"github.com/planmaster/planmaster/internal/config"
	"github.com/planmaster/planmaster/internal/database"
	"github.com/planmaster/planmaster/internal/middleware"
	"github.com/planmaster/planmaster/internal/repository"
	"github.com/planmaster/planmaster/internal/service"
	"github.com/planmaster/planmaster/pkg/auth"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	dbConfig := database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		Debug:    cfg.IsDevelopment(),
	}

	// Connect to database with Ent
	log.Println("Connecting to PostgreSQL with Ent...")
	entClient, err := database.NewEntClient(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := entClient.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	// Second connection for the raw stats queries
	statsDB, err := database.NewSQLX(dbConfig)
	if err != nil {
		log.Fatalf("Failed to open stats connection: %v", err)
	}
	defer func() {
		if err := statsDB.Close(); err != nil {
			log.Printf("Failed to close stats connection: %v", err)
		}
	}()

	// Run auto migration
	if cfg.Server.AutoMigrate {
		if err := runAutoMigration(context.Background(), entClient); err != nil {
			log.Fatalf("Failed to run auto migration: %v", err)
		}
	}

	// Initialize auth building blocks
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TokenDuration)
	passwordManager := auth.NewPasswordManager()

	// Initialize repositories and services
	planRepo := repository.NewPlanRepository(entClient)
	statsRepo := repository.NewStatsRepository(statsDB)

	authService := service.NewAuthService(entClient, tokenManager, passwordManager)
	planService := service.NewPlanService(planRepo, statsRepo)

	// Initialize middleware
	metadataExtractor := middleware.NewMetadataExtractorInterceptor()
	validationInterceptor := middleware.NewValidationInterceptor(cfg.Validation)
	authInterceptor := middleware.NewAuthInterceptor(tokenManager)

	// Create gRPC server with interceptors
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			metadataExtractor.Unary(),
			validationInterceptor.Unary(),
			authInterceptor.Unary(),
			loggingInterceptor,
		),
	)

	// Register services
	authv1.RegisterAuthServiceServer(grpcServer, authService)
	planv1.RegisterPlanServiceServer(grpcServer, planService)

	// Register health check
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("auth.v1.AuthService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("plan.v1.PlanService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Register reflection for development
	if cfg.Server.EnableReflection {
		reflection.Register(grpcServer)
		log.Println("gRPC reflection enabled (disable in production)")
	}

	// Create listener
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCPort))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 PlanMaster gRPC server listening on port %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("📴 Shutting down server...")
	grpcServer.GracefulStop()
	log.Println("✅ Server shutdown complete")
}

// runAutoMigration runs the auto migration
func runAutoMigration(ctx context.Context, client *ent.Client) error {
	log.Println("🔄 Running auto migration...")
	err := client.Schema.Create(
		ctx,
		migrate.WithDropIndex(true),
		migrate.WithDropColumn(true),
		migrate.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("run auto migration: %w", err)
	}
	log.Println("✅ Auto migration completed")
	return nil
}

// loggingInterceptor logs incoming requests
func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	clientInfo := middleware.GetClientInfoFromContext(ctx)
	resp, err := handler(ctx, req)
	duration := time.Since(start)
	logLevel := "INFO"
	if err != nil {
		logLevel = "ERROR"
	}
	log.Printf("[%s] %s completed in %v (user: %s, ip: %s)",
		logLevel, info.FullMethod, duration, clientInfo.UserID, clientInfo.IPAddress)
	if err != nil {
		log.Printf("[ERROR] %s error: %v", info.FullMethod, err)
	}
	return resp, err
}
