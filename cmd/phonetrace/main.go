// Command phonetrace runs the lookup pipeline from the command line for
// one or more phone numbers and prints the results.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"phonelookup_backend/internal/geocode"
	"phonelookup_backend/internal/lookup"
	"phonelookup_backend/internal/mapgen"
	"phonelookup_backend/platform/config"
	"phonelookup_backend/platform/logger"
	"phonelookup_backend/platform/validator"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: phonetrace <phone_number> [<phone_number>...]")
		fmt.Fprintln(os.Stderr, "example: phonetrace +14155552671")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)

	resolver, err := geocode.NewResolver(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize geocode resolver:", err)
		os.Exit(1)
	}

	maps, err := mapgen.NewBuilder(cfg.MapOutputDir, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize map builder:", err)
		os.Exit(1)
	}

	svc := lookup.NewService(resolver, maps, validator.New(), log)
	ctx := context.Background()

	for _, number := range os.Args[1:] {
		fmt.Printf("\nAnalyzing: %s\n", number)
		fmt.Println(strings.Repeat("-", 60))

		result, failure := svc.Track(ctx, lookup.TrackRequest{PhoneNumber: number})
		if failure != nil {
			fmt.Println("Error:", failure.Detail)
			fmt.Println(strings.Repeat("-", 60))
			continue
		}

		fmt.Println("Valid number:", result.Number)
		fmt.Printf("Country:      %s (%s)\n", result.Country, result.CountryCode)
		fmt.Println("Carrier:     ", result.Carrier)
		fmt.Println("Timezones:   ", strings.Join(result.Timezones, ", "))
		fmt.Printf("Location:     %.4f, %.4f (%s)\n", result.Location.Latitude, result.Location.Longitude, result.Location.Formatted)
		if result.MapFile != nil {
			fmt.Println("Map saved:   ", *result.MapFile)
		}
		fmt.Println(strings.Repeat("-", 60))
	}
}
