package main

import (
	"brand_site/internal/app"

	"github.com/rs/zerolog/log"
)

func main() {
	a := app.NewApp()

	err := a.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
