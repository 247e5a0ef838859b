package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"

	"todoapp/configs"
	httpAdapter "todoapp/internal/adapters/input/http"
	"todoapp/internal/adapters/output/memory"
	"todoapp/internal/adapters/output/postgres"
	"todoapp/internal/application"
	"todoapp/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapters (repository + view staleness tracker)
	postgresRepo := postgres.NewTodoRepository(dbConGorm.Postgres)
	viewCache := memory.NewViewCache()
	// Application service (use case)
	srv := application.NewTodoService(postgresRepo, viewCache)
	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv, dbConGorm.Postgres, viewCache)

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	// Every todo route sits behind the identity boundary: no resolved
	// identity, no operation.
	magnolia := app.Group("/v1/api", httpAdapter.AuthRequired(configs.GetViper().Auth.JwtSecret))
	{
		magnolia.Get("/todo", hdl.ListTodos)
		magnolia.Post("/todo", hdl.CreateTodo)
		magnolia.Put("/todo/:id", hdl.UpdateTodo)
		magnolia.Delete("/todo/:id", hdl.DeleteTodo)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
