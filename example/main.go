package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/theflywheel/htable"
	"github.com/theflywheel/htable/internal/config"
)

// User is the record stored per id
type User struct {
	Name string
	Age  int
}

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	logger, err := cfg.StderrLogger()
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up logging")
	}

	users := htable.New[int, User](htable.WithLogger(logger))
	users.Insert(1, User{Name: "Alice", Age: 15})
	users.Insert(2, User{Name: "Bob", Age: 15})
	logger.Debug().Str("table", users.String()).Msg("users inserted")

	for id, user := range users.All() {
		fmt.Printf("id: %d, name: %s, age: %d\n", id, user.Name, user.Age)
	}
}
