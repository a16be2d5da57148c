package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"prodnames/internal/catalog"
	"prodnames/internal/naming"
	"prodnames/internal/observability"
)

const serviceName = "product-name-service"

// StatusInfo is the configuration summary exposed by the status endpoints.
type StatusInfo struct {
	ShopifyConfigured bool
	Store             string
	APIVersion        string
}

func Status(info StatusInfo) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, StatusResponse{
			Status:            "ok",
			Service:           serviceName,
			ShopifyConfigured: info.ShopifyConfigured,
		})
	}
}

func Health(info StatusInfo) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:            "ok",
			ShopifyConfigured: info.ShopifyConfigured,
			Store:             info.Store,
			APIVersion:        info.APIVersion,
		})
	}
}

// SeasonProducts always answers 200; remote failures are described in the body.
func SeasonProducts(svc *catalog.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SeasonProductsRequest
		if err := c.Bind(&req); err != nil {
			return err
		}

		return c.JSON(http.StatusOK, svc.SeasonProducts(c.Request().Context(), req.Season))
	}
}

func GenerateNames(gen *naming.Generator) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		var req GenerateNamesRequest
		if err := c.Bind(&req); err != nil {
			return err
		}

		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("name generation failed")
				err = c.JSON(http.StatusInternalServerError, ErrorResponse{
					Success: false,
					Error:   fmt.Sprint(r),
				})
			}
		}()

		count := naming.DefaultCount
		if req.Count != nil {
			count = *req.Count
		}

		res := gen.Generate(count, req.ExistingNames)
		observability.NamesGeneratedTotal.Add(float64(len(res.Names)))
		log.WithFields(log.Fields{
			"requested": count,
			"generated": len(res.Names),
			"excluded":  res.ExcludedCount,
		}).Debug("names generated")

		return c.JSON(http.StatusOK, GenerateNamesResponse{
			Success:        true,
			Names:          res.Names,
			Count:          len(res.Names),
			TotalAvailable: res.TotalAvailable,
			ExcludedCount:  res.ExcludedCount,
		})
	}
}

func CheckName(svc *catalog.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CheckNameRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		req.Name = strings.TrimSpace(req.Name)
		if err := c.Validate(&req); err != nil {
			return err
		}

		return c.JSON(http.StatusOK, svc.CheckName(c.Request().Context(), req.Name))
	}
}
