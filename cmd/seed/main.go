package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"

	"todoapp/configs"
	"todoapp/internal/domain"
	"todoapp/pkg/database_driver/gorm"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// Development seeding tool: inserts fake todos for one owner so the listing
// has something to show. Never run against production data.

var words = []string{
	"buy", "milk", "clean", "garage", "call", "dentist", "review", "notes",
	"water", "plants", "plan", "trip", "renew", "passport", "fix", "bike",
	"read", "chapter", "write", "summary", "pay", "rent", "walk", "dog",
}

func fakeWords(min, max int) string {
	n := min + rand.Intn(max-min+1)
	picked := make([]string, 0, n)
	for i := 0; i < n; i++ {
		picked = append(picked, words[rand.Intn(len(words))])
	}
	return strings.Join(picked, " ")
}

func main() {
	var (
		user string
		n    int
		env  string
	)
	flag.StringVar(&user, "user", "", "owner id to seed todos for")
	flag.IntVar(&n, "n", 25, "how many todos to insert")
	flag.StringVar(&env, "env", "", "the environment to use")
	flag.Parse()

	if user == "" {
		logrus.Fatalln("missing -user: every todo needs an owner")
	}

	configs.InitViper("./configs", env)
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		logrus.Fatalln(err)
	}
	defer gorm.DisconnectPostgres(dbConGorm.Postgres)

	domain.MigrateDatabase(dbConGorm.Postgres)

	for i := 0; i < n; i++ {
		title := fakeWords(2, 5)
		body := fakeWords(1, 10)
		completed := false
		todo := domain.Todo{
			Title:     &title,
			Body:      &body,
			Completed: &completed,
			UserID:    &user,
		}
		if err := dbConGorm.Postgres.Create(&todo).Error; err != nil {
			logrus.Fatalln(err)
		}
	}

	fmt.Printf("seeded %d todos for user %s\n", n, user)
}
