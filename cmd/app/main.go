package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	inhttp "github.com/suchimauz/clinic-schedule-slots-service/internal/adapters/in/http"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/adapters/out/cache"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/adapters/out/logger"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/adapters/out/supabase"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/config"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/json_types"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/out"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/services/schedule_service"
)

func main() {
	// Переменные окружения из .env, если файл есть
	_ = godotenv.Load()

	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Времена расписания - настенные часы клиники
	json_types.SetLocation(cfg.Location())

	mainLogger := logger.NewZerologLogger(cfg)
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	storeAdapter, err := supabase.NewSupabaseAdapter(cfg, mainLogger.WithModule("SupabaseAdapter"))
	if err != nil {
		log.Error("app.supabase.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		lruAdapter, err := cache.NewCacheAdapter(cfg, mainLogger.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = lruAdapter
	}

	// Инициализация сервиса
	scheduleService := schedule_service.NewScheduleService(
		storeAdapter,
		cacheAdapter,
		mainLogger,
		cfg,
	)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := inhttp.NewScheduleController(scheduleService, cfg)
	controller.RegisterRoutes(router)

	// Слушатель событий изменения записей, только если шина включена
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewAppointmentListener(
			scheduleService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
