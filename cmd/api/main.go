package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-chat-skill/config"
	"voice-chat-skill/internal/app"
	"voice-chat-skill/internal/httpserver"
	skillHTTP "voice-chat-skill/internal/skill/delivery/http"
	"voice-chat-skill/pkg/ratelimit"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := app.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting voice chat skill...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Skill domain
	uc, err := app.NewSkillUseCase(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize skill: %v", err)
		os.Exit(1)
	}

	handlerCfg := skillHTTP.Config{
		ApplicationID:  cfg.Skill.ApplicationID,
		RequestTimeout: cfg.Skill.RequestTimeout,
	}
	if cfg.Skill.ApplicationID == "" {
		logger.Warn(ctx, "skill.application_id is empty, requests for any skill are accepted")
	}
	if cfg.RateLimit.Enabled {
		limiter, err := ratelimit.New(ratelimit.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxKeys:        cfg.RateLimit.MaxTrackedUsers,
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize rate limiter: %v", err)
			os.Exit(1)
		}
		handlerCfg.Limiter = limiter
	}
	skillHandler := skillHTTP.New(logger, uc, handlerCfg)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		SkillHandler:   skillHandler,
		MetricsEnabled: true,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// Local development: print the public endpoint to paste into the skill console.
	if cfg.Skill.TunnelAPIURL != "" {
		go func() {
			publicURL, err := detectTunnelURL(ctx, cfg.Skill.TunnelAPIURL, 10, 3*time.Second)
			if err != nil {
				logger.Warnf(ctx, "Could not detect tunnel URL: %v", err)
				return
			}
			logger.Infof(ctx, "Skill endpoint: %s%s", publicURL, skillHTTP.SkillPath)
		}()
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
