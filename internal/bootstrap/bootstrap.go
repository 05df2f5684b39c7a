package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "campusregistry/docs" // Import generated swagger docs
	appControllers "campusregistry/internal/app/controllers"
	appMigrations "campusregistry/internal/app/migrations"
	appRepos "campusregistry/internal/app/repositories"
	appRoutes "campusregistry/internal/app/routes"
	appServices "campusregistry/internal/app/services"
	"campusregistry/internal/config"
	"campusregistry/internal/db"
	appMiddleware "campusregistry/internal/middleware"
	"campusregistry/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService       appServices.StudentService
	CourseService        appServices.CourseService
	DepartmentService    appServices.DepartmentService
	EnrollmentService    appServices.EnrollmentService
	ClassroomService     appServices.ClassroomService
	AlumnusService       appServices.AlumnusService
	InstructorService    appServices.InstructorService
	AttendanceService    appServices.AttendanceService
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	DepartmentController *appControllers.DepartmentController
	EnrollmentController *appControllers.EnrollmentController
	ClassroomController  *appControllers.ClassroomController
	AlumnusController    *appControllers.AlumnusController
	InstructorController *appControllers.InstructorController
	AttendanceController *appControllers.AttendanceController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	appMiddleware.SetErrorVerbosity(cfg.IsDevelopment())

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.DepartmentRepository,
	)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.DepartmentRepository,
	)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
	)
	deps.ClassroomService = appServices.NewClassroomService(deps.Repos.ClassroomRepository)
	deps.AlumnusService = appServices.NewAlumnusService(
		deps.Repos.AlumnusRepository,
		deps.Repos.StudentRepository,
	)
	deps.InstructorService = appServices.NewInstructorService(
		deps.Repos.InstructorRepository,
		deps.Repos.DepartmentRepository,
	)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.ClassroomController = appControllers.NewClassroomController(deps.ClassroomService)
	deps.AlumnusController = appControllers.NewAlumnusController(deps.AlumnusService)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.CORS(cfg.CORS))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.CourseController,
		deps.DepartmentController,
		deps.EnrollmentController,
		deps.ClassroomController,
		deps.AlumnusController,
		deps.InstructorController,
		deps.AttendanceController,
	)

	return router
}
