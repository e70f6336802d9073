package main

import (
	"context"
	"fmt"
	"interview-scheduler/config"
	apiv1 "interview-scheduler/controllers/v1"
	"interview-scheduler/controllers/v1/dict"
	"interview-scheduler/fiberlog"
	"interview-scheduler/initializers"
	"interview-scheduler/middleware"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // вложения отзывов
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	if *config.Conf.App.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: "./docs/swagger.json",
		}))
	}
	app.Mount("/api/v1", newApiV1())

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		log.Info("остановка сервера")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("ошибка остановки сервера")
		}
	}()

	addr := fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("ошибка запуска сервера")
	}
	<-done
	log.Info("сервер остановлен")
}

func newApiV1() *fiber.App {
	api := fiber.New()
	api.Use(fiberlog.New(*initializers.LoggerConfig))
	if config.Conf.ErrNotify.Addr != "" {
		api.Use(middleware.ErrNotify(config.Conf.ErrNotify.Addr,
			time.Duration(config.Conf.ErrNotify.TimeoutInSec)*time.Second))
	}
	api.Use(middleware.WithBodyLimit(1024 * 1024))
	api.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(api)

	dicts := fiber.New()
	dicts.Use(middleware.AuthorizationRequired())
	dict.InitStepTypeDictApiRouters(dicts)
	api.Mount("/dict", dicts)

	apiv1.InitParticipantApiRouters(api)
	apiv1.InitCandidateApiRouters(api)
	apiv1.InitStepApiRouters(api)
	apiv1.InitEventApiRouters(api)
	apiv1.InitFeedbackApiRouters(api)
	return api
}
