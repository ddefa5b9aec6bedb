package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	categoryUsecases "quickdesk/internal/application/category/usecases"
	upgradeUsecases "quickdesk/internal/application/upgrade/usecases"
	"quickdesk/internal/infrastructure/auth"
	"quickdesk/internal/infrastructure/cache"
	"quickdesk/internal/infrastructure/config"
	"quickdesk/internal/infrastructure/email"
	"quickdesk/internal/infrastructure/permission"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/services/markdown"
)

// services holds infrastructure services shared by use cases and middleware.
type services struct {
	jwtSvc        *auth.JWTService
	hasher        *auth.BcryptPasswordHasher
	enforcer      *permission.Enforcer
	categoryCache categoryUsecases.CategoryCache
	notifier      upgradeUsecases.DecisionNotifier
	renderer      *markdown.Renderer
}

// initInfrastructure connects optional backends and builds the shared services.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories(c.db, log)

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.SeedDefaultPolicies(enforcer); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}

	var categoryCache categoryUsecases.CategoryCache = cache.NoopCategoryCache{}
	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
		categoryCache = cache.NewRedisCategoryCache(client, time.Duration(cfg.Redis.CategoryTTLSeconds)*time.Second)
	}

	var notifier upgradeUsecases.DecisionNotifier = email.NoopNotifier{}
	if cfg.Email.Enabled {
		notifier = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
		log.Infow("upgrade decision emails enabled", "smtp_host", cfg.Email.SMTPHost)
	}

	c.svcs = &services{
		jwtSvc:        auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes),
		hasher:        auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		enforcer:      enforcer,
		categoryCache: categoryCache,
		notifier:      notifier,
		renderer:      markdown.NewRenderer(),
	}
	return nil
}

func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}
