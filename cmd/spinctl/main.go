// spinctl - консольный клиент колеса: крутит колесо локально,
// пока сервер выбирает приз, и останавливает его на выданном угле
package main

import (
	"brand_site/pkg/wheel"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "адрес сервера")
	token := flag.String("token", os.Getenv("PROMO_ACCESS_TOKEN"), "access token (Bearer)")
	start := flag.Float64("rotation", 0, "текущий угол колеса, градусы")
	minSpin := flag.Duration("min-spin", time.Second, "минимальное время предварительного вращения")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, &client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: *addr,
		token:   *token,
	}, *start, *minSpin))
}

func run(ctx context.Context, c *client, start float64, minSpin time.Duration) int {
	spinner := wheel.NewSpinner(start, wheel.DefaultSpinStep, wheel.DefaultSpinInterval)
	spinner.Start(ctx)
	began := time.Now()

	outcome, err := c.spin(ctx, spinner.Rotation())

	// Колесо должно покрутиться хотя бы minSpin, даже если сервер ответил быстрее
	if wait := minSpin - time.Since(began); err == nil && wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
		}
	}
	current := spinner.Stop()

	if err != nil {
		log.Error().Err(err).Msg("spin request failed")
		return 1
	}

	switch {
	case outcome.Result != nil:
		res := outcome.Result
		spinner.Settle(res.TargetRotation)
		fmt.Printf("Prize: %s (%s, %s)\n", res.Prize.Name, res.Prize.Category, res.Prize.AssociatedArea)
		fmt.Printf("Wheel: %.1f° -> %.1f° (+%d turns)\n", current, spinner.Rotation(), res.ExtraTurns)
		if res.Prize.Note != "" {
			fmt.Println(res.Prize.Note)
		}
		return 0
	case outcome.Status == http.StatusConflict:
		if outcome.Existing != nil {
			fmt.Printf("Already spun. Your prize: %s\n", outcome.Existing.Name)
		} else {
			fmt.Println("Already spun.")
		}
		return 0
	case outcome.Status == http.StatusUnauthorized:
		fmt.Printf("Login required: %s%s\n", c.baseURL, outcome.Redirect)
		return 2
	default:
		log.Error().Int("status", outcome.Status).Str("error", outcome.Error).Msg("spin rejected")
		return 1
	}
}
