package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Abraxas-365/folio/pkg/auth"
	"github.com/Abraxas-365/folio/pkg/fsx"
	"github.com/Abraxas-365/folio/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/folio/pkg/logx"
	"github.com/Abraxas-365/folio/pkg/storex"
	"github.com/Abraxas-365/folio/pkg/storex/storexfirestore"
	"github.com/Abraxas-365/folio/pkg/storex/storexredis"
	"github.com/Abraxas-365/folio/portfolio/contact/contactapi"
	"github.com/Abraxas-365/folio/portfolio/contact/contactinfra"
	"github.com/Abraxas-365/folio/portfolio/contact/contactsrv"
	"github.com/Abraxas-365/folio/portfolio/cv"
	"github.com/Abraxas-365/folio/portfolio/cv/cvapi"
	"github.com/Abraxas-365/folio/portfolio/project"
	"github.com/Abraxas-365/folio/portfolio/project/projectapi"
	"github.com/Abraxas-365/folio/portfolio/project/projectsrv"
	"github.com/Abraxas-365/folio/portfolio/record/recordapi"
	"github.com/Abraxas-365/folio/portfolio/record/recordsrv"
)

// Container holds all application dependencies
type Container struct {
	// Config
	AuthConfig auth.Config

	// Infrastructure
	Firestore  *firestore.Client
	Redis      *redis.Client
	DB         *sqlx.DB
	S3Client   *s3.Client
	FileSystem fsx.FileSystem
	Store      storex.Store

	// Services
	TokenService   *auth.TokenService
	RecordService  *recordsrv.RecordService
	ProjectService *projectsrv.ProjectService
	ContactService *contactsrv.ContactService
	CVService      *cv.Service

	// API Handlers
	AuthHandlers    *auth.Handlers
	RecordHandlers  *recordapi.Handlers
	ProjectHandlers *projectapi.Handlers
	ContactHandlers *contactapi.Handlers
	CVHandlers      *cvapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer(ctx context.Context) *Container {
	c := &Container{}
	c.initInfrastructure(ctx)
	c.initServices()
	return c
}

func (c *Container) initInfrastructure(ctx context.Context) {
	// 1. Firestore Connection
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		logx.Fatalf("GCP_PROJECT_ID is not set")
	}
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		logx.Fatalf("Failed to connect to Firestore: %v", err)
	}
	c.Firestore = fs

	// 2. Redis Connection (optional read-through cache)
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr != "" {
		redisPass := os.Getenv("REDIS_PASS")
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPass,
			DB:       0,
		})
		if _, err := c.Redis.Ping(ctx).Result(); err != nil {
			logx.Warnf("Failed to connect to Redis: %v", err)
		}
	} else {
		logx.Info("REDIS_ADDR is not set, content caching disabled")
	}

	// 3. Database Connection (contact messages)
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 4. AWS S3 Configuration (CV file)
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "assets")

	// 5. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWTSecret = os.Getenv("JWT_SECRET")
	if c.AuthConfig.JWTSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.AuthConfig.JWTSecret = "super-secret-key-please-change-me-in-production"
	}
	c.AuthConfig.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	if c.AuthConfig.AdminPasswordHash == "" {
		logx.Warn("ADMIN_PASSWORD_HASH is not set, admin login disabled")
	}
}

func (c *Container) initServices() {
	// --- Document Store ---
	c.Store = storexfirestore.New(c.Firestore)
	if c.Redis != nil {
		c.Store = storexredis.New(c.Store, c.Redis, cacheTTL())
	}

	// --- Repositories ---
	projectRepo := project.NewRepository(c.Store)
	contactRepo := contactinfra.NewPostgresMessageRepository(c.DB)

	// --- Domain Services ---
	recordService, err := recordsrv.NewRecordService(c.Store)
	if err != nil {
		logx.Fatalf("Failed to build record service: %v", err)
	}
	c.RecordService = recordService
	c.ProjectService = projectsrv.NewProjectService(projectRepo)
	c.ContactService = contactsrv.NewContactService(contactRepo)

	cvKey := os.Getenv("CV_OBJECT_KEY")
	if cvKey == "" {
		cvKey = "cv.pdf"
	}
	c.CVService = cv.NewService(c.FileSystem, cvKey, 15*time.Minute)

	// --- Auth ---
	c.TokenService = auth.NewTokenService(
		c.AuthConfig.JWTSecret,
		c.AuthConfig.TokenTTL,
		c.AuthConfig.Issuer,
	)

	// --- Handlers ---
	c.AuthHandlers = auth.NewHandlers(c.TokenService, c.AuthConfig)
	c.RecordHandlers = recordapi.NewHandlers(c.RecordService)
	c.ProjectHandlers = projectapi.NewHandlers(c.ProjectService)
	c.ContactHandlers = contactapi.NewHandlers(c.ContactService)
	c.CVHandlers = cvapi.NewHandlers(c.CVService)
}

func cacheTTL() time.Duration {
	raw := os.Getenv("CACHE_TTL")
	if raw == "" {
		return 5 * time.Minute
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		logx.Warnf("Invalid CACHE_TTL %q, using default: %v", raw, err)
		return 5 * time.Minute
	}
	return ttl
}
