// Package catalog answers the season and name lookups against the remote
// catalog, degrading to static data when the remote side fails.
package catalog

import (
	"context"
	"strconv"

	log "github.com/sirupsen/logrus"

	"prodnames/internal/model"
	"prodnames/internal/naming"
	"prodnames/internal/observability"
)

type Catalog interface {
	Products(ctx context.Context) ([]model.Product, error)
	ProductsByTitle(ctx context.Context, title string) ([]model.Product, error)
}

type SeasonResult struct {
	Success       bool     `json:"success"`
	Season        string   `json:"season"`
	Names         []string `json:"names"`
	Count         int      `json:"count"`
	TotalProducts int      `json:"total_products"`
	Fallback      bool     `json:"fallback,omitempty"`
	Error         string   `json:"error,omitempty"`
}

type NameCheckResult struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	Exists  bool   `json:"exists"`
	Error   string `json:"error,omitempty"`
}

type Service struct {
	Catalog Catalog
	Pool    *naming.Pool
}

// SeasonProducts lists the catalog titles tagged with season. Any remote
// failure is reported in the result together with the season's fallback
// names; it is never returned as an error.
func (s *Service) SeasonProducts(ctx context.Context, season string) SeasonResult {
	products, err := s.Catalog.Products(ctx)
	if err != nil {
		names := s.Pool.Fallback(season)
		known := s.Pool.HasFallback(season)
		observability.FallbackResponsesTotal.WithLabelValues(strconv.FormatBool(known)).Inc()
		log.WithFields(log.Fields{
			"season":        season,
			"known_season":  known,
			"fallback_size": len(names),
		}).WithError(err).Warn("shopify lookup failed, serving fallback names")

		return SeasonResult{
			Success:  false,
			Season:   season,
			Names:    names,
			Count:    len(names),
			Fallback: true,
			Error:    err.Error(),
		}
	}

	names := naming.FilterBySeason(products, season)
	log.WithFields(log.Fields{
		"season":   season,
		"matches":  len(names),
		"products": len(products),
	}).Info("season products filtered")

	return SeasonResult{
		Success:       true,
		Season:        season,
		Names:         names,
		Count:         len(names),
		TotalProducts: len(products),
	}
}

// CheckName reports whether a product titled name exists in the catalog.
func (s *Service) CheckName(ctx context.Context, name string) NameCheckResult {
	products, err := s.Catalog.ProductsByTitle(ctx, name)
	if err != nil {
		log.WithField("name", name).WithError(err).Warn("shopify name check failed")
		return NameCheckResult{Success: false, Name: name, Exists: false, Error: err.Error()}
	}

	return NameCheckResult{Success: true, Name: name, Exists: len(products) > 0}
}
