package main

// @title Todo APIs
// @version 1.0
// @description Personal to-do list backend. Every operation is scoped to the
// @description authenticated caller supplied by the external identity provider.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	protocol "todoapp/protocal"

	_ "todoapp/docs"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
