package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"prodnames/internal/catalog"
	"prodnames/internal/config"
	"prodnames/internal/naming"
	"prodnames/internal/shopify"
)

// go run ./cmd/seasons -mode=season -season="PE 25"
// go run ./cmd/seasons -mode=check -name="Aurora"
// go run ./cmd/seasons -mode=generate -count=5 -exclude="Aurora,Luna"
func main() {
	mode := flag.String("mode", "season", "Mode: 'season', 'check' or 'generate'")
	season := flag.String("season", "PE 25", "Season tag to look up")
	name := flag.String("name", "", "Product title to check")
	count := flag.Int("count", naming.DefaultCount, "How many names to generate")
	exclude := flag.String("exclude", "", "Comma separated names to exclude")
	flag.Parse()

	cfg := config.Load()
	pool := naming.DefaultPool()
	svc := &catalog.Service{Catalog: shopify.NewClient(cfg), Pool: pool}
	ctx := context.Background()

	var out interface{}
	switch *mode {
	case "season":
		out = svc.SeasonProducts(ctx, *season)
	case "check":
		if strings.TrimSpace(*name) == "" {
			log.Fatal("-name is required in check mode")
		}
		out = svc.CheckName(ctx, strings.TrimSpace(*name))
	case "generate":
		var existing []string
		for _, n := range strings.Split(*exclude, ",") {
			if n = strings.TrimSpace(n); n != "" {
				existing = append(existing, n)
			}
		}
		out = naming.NewGenerator(pool).Generate(*count, existing)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.WithError(err).Fatal("could not write result")
	}
}
