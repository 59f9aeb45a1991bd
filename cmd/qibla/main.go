package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"qibla-direction-service/internal/adapters/geocode"
	"qibla-direction-service/internal/services"
)

// CLI: print the qibla direction (or the full compass table) for a
// location given as "lat,lon" coordinates or a free-text place name.
func main() {
	jsonOut := flag.Bool("json", false, "output result in JSON format")
	table := flag.Bool("table", false, "display compass table showing distance to the Kaaba from each direction")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	// Optional .env keeps CLI and server configuration consistent.
	_ = godotenv.Load()

	resolver := geocode.NewNominatimResolver(
		os.Getenv("NOMINATIM_URL"),
		os.Getenv("GEOCODER_USER_AGENT"),
		nil,
	)
	calculator := services.NewGreatCircleCalculator()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	loc, err := resolver.Resolve(ctx, input)
	if err != nil {
		fail(*jsonOut, err)
	}

	if *table {
		result := calculator.CalculateCompassTable(loc)
		if *jsonOut {
			printJSON(toTableDTO(result))
			return
		}
		displayTable(result)
		return
	}

	result := calculator.CalculateQibla(loc)
	if *jsonOut {
		printJSON(toQiblaDTO(result))
		return
	}

	fmt.Println("Direction to Mecca:")
	fmt.Printf("Bearing: %.2f° from North\n", result.Bearing)
	fmt.Printf("Direction: %s\n", result.Direction)
	fmt.Printf("Distance: %.0f km\n", result.DistanceKM)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <location>\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "  <location>  coordinates as \"lat,lon\" or an address to geocode")
	flag.PrintDefaults()
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// fail reports the error in the selected output mode and exits nonzero.
func fail(jsonOut bool, err error) {
	if jsonOut {
		printJSON(map[string]string{"error": err.Error()})
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
