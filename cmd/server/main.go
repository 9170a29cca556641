package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"careerpath/internal/config"
	"careerpath/internal/guidance"
	apphttp "careerpath/internal/http"
	"careerpath/internal/model"
	"careerpath/internal/repository/sqlite"
	"careerpath/internal/service"
	"careerpath/internal/storage"
	"careerpath/pkg/llm"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	predictionRepo := sqlite.NewPredictionRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := predictionRepo.Init(ctx); err != nil {
		logger.Fatalf("init prediction repository: %v", err)
	}

	if err := ensureModelArtifact(ctx, cfg, logger); err != nil {
		logger.Fatalf("fetch model artifact: %v", err)
	}

	// no classifier means no prediction can ever succeed; refuse to start
	classifier, err := model.Load(cfg.Model.Path)
	if err != nil {
		logger.Fatalf("load classifier: %v", err)
	}
	logger.Infof("classifier loaded from %s (%d features, %d labels)",
		cfg.Model.Path, classifier.Features(), len(classifier.Labels()))

	userService := service.NewUserService(userRepo)
	predictionService := service.NewPredictionService(classifier, predictionRepo)
	guidanceService := guidance.NewService(buildLLMClient(cfg, logger), buildGuidanceCache(cfg, logger), logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		userService,
		predictionService,
		guidanceService,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

// ensureModelArtifact downloads the classifier artifact from object storage
// when it is absent locally and a bucket is configured. With no bucket the
// artifact must already be on disk; model.Load reports that case.
func ensureModelArtifact(ctx context.Context, cfg config.Config, logger *logrus.Logger) error {
	if _, err := os.Stat(cfg.Model.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if cfg.Storage.Bucket == "" {
		return nil
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Infof("downloading model artifact s3://%s/%s", cfg.Storage.Bucket, cfg.Storage.Key)
	var store storage.Service = storage.NewS3Service(client)
	return store.DownloadObject(ctx, cfg.Storage.Bucket, cfg.Storage.Key, cfg.Model.Path)
}

func buildLLMClient(cfg config.Config, logger *logrus.Logger) llm.Client {
	if strings.TrimSpace(cfg.OpenAI.APIKey) == "" {
		logger.Info("no generation api key configured; serving built-in guidance content")
		return nil
	}
	logger.Infof("guidance generation enabled (model %s)", cfg.OpenAI.Model)
	return llm.NewOpenAIClient(cfg.OpenAI.Endpoint, cfg.OpenAI.APIKey, cfg.OpenAI.Model)
}

func buildGuidanceCache(cfg config.Config, logger *logrus.Logger) guidance.Cache {
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	if cfg.Cache.RedisAddr == "" {
		return guidance.NewMemoryCache(ttl)
	}
	logger.Infof("using redis guidance cache at %s", cfg.Cache.RedisAddr)
	return guidance.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr}), ttl)
}
