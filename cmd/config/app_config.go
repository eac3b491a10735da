package config

import (
	"smart-pantry-backend/internal/api/handlers"
	"smart-pantry-backend/internal/api/routes"
	"smart-pantry-backend/internal/middleware"
	"smart-pantry-backend/internal/utils"
	"smart-pantry-backend/internal/utils/mailing"
	"smart-pantry-backend/internal/utils/storage"
	"smart-pantry-backend/pkg/images"
	"smart-pantry-backend/pkg/jwt"
	"smart-pantry-backend/pkg/pantry"
	"smart-pantry-backend/pkg/scheduler"
	"smart-pantry-backend/pkg/suggestion"
	"smart-pantry-backend/pkg/user"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// NewApp wires the application. A nil db means the database was unreachable
// at startup; the app then runs in demo mode against in-memory repositories
// seeded with a demo account instead of crashing.
func NewApp(db *gorm.DB) (*fiber.App, *scheduler.Scheduler, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	imageResolver := images.NewResolver()
	mailSender := mailing.NewSender()

	// Repository
	demoMode := db == nil
	var userRepository user.UserRepository
	var pantryRepository pantry.PantryRepository
	var suggestionRepository suggestion.SuggestionRepository
	if demoMode {
		userRepository = user.NewDemoUserRepository()
		pantryRepository = pantry.NewDemoPantryRepository(user.DemoUsername)
		suggestionRepository = suggestion.NewMemorySuggestionRepository()
	} else {
		userRepository = user.NewUserRepository(db)
		pantryRepository = pantry.NewPantryRepository(db)
		suggestionRepository = suggestion.NewSuggestionRepository(db)
	}

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, mailSender)
	pantryService := pantry.NewPantryService(pantryRepository, imageResolver, s3)
	suggestionService := suggestion.NewSuggestionService(suggestionRepository, pantryRepository, suggestion.DefaultMatcher())

	// Scheduler
	notifier := mailing.NewExpiryNotifier(mailSender, 30*time.Second)
	sched, err := scheduler.New(
		schedulerConfig(),
		scheduler.SystemClock(),
		userRepository,
		pantryService,
		notifier,
	)
	if err != nil {
		return nil, nil, err
	}

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService, validator)
	notificationHandler := handlers.NewNotificationHandler(sched)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		PantryHandler:       pantryHandler,
		SuggestionHandler:   suggestionHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
		DemoMode:            demoMode,
	}
	routesConfig.Setup()
	return app, sched, nil
}

func schedulerConfig() scheduler.Config {
	triggerAt := utils.GetConfig("NOTIFY_AT")
	if triggerAt == "" {
		triggerAt = "09:00"
	}

	pollInterval := time.Minute
	if raw := utils.GetConfig("NOTIFY_POLL_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			pollInterval = time.Duration(seconds) * time.Second
		}
	}

	return scheduler.Config{
		TriggerAt:    triggerAt,
		PollInterval: pollInterval,
		SweepTimeout: time.Minute,
	}
}
