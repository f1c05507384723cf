package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// PricingModel is the billing unit a service is quoted in.
type PricingModel string

const (
	PricingPerPiece   PricingModel = "per-piece"
	PricingPerRoom    PricingModel = "per-room"
	PricingPerHour    PricingModel = "per-hour"
	PricingPerKg      PricingModel = "per-kg"
	PricingPerSeater  PricingModel = "per-seater"
	PricingPerBedroom PricingModel = "per-bedroom"
	PricingPerBasket  PricingModel = "per-basket"
	PricingMonthly    PricingModel = "monthly"
	PricingPerCourse  PricingModel = "per-course"
	PricingPerProject PricingModel = "per-project"
)

var pricingLabels = map[PricingModel]string{
	PricingPerPiece:   "Per Piece",
	PricingPerRoom:    "Per Room",
	PricingPerHour:    "Per Hour",
	PricingPerKg:      "Per Kg",
	PricingPerSeater:  "Per Seater",
	PricingPerBedroom: "Per Bedroom",
	PricingPerBasket:  "Per Basket",
	PricingMonthly:    "Monthly",
	PricingPerCourse:  "Per Course",
	PricingPerProject: "Per Project",
}

// Valid reports whether p is one of the known pricing models.
func (p PricingModel) Valid() bool {
	_, ok := pricingLabels[p]
	return ok
}

// Label returns the display label, e.g. "Per Piece".
func (p PricingModel) Label() string {
	if label, ok := pricingLabels[p]; ok {
		return label
	}
	return string(p)
}

// IconName identifies an icon from the fixed icon set.
type IconName string

// Service is a single bookable offering within a category.
type Service struct {
	ID           string       `json:"id" yaml:"id" validate:"required"`
	Name         string       `json:"name" yaml:"name" validate:"required"`
	Slug         string       `json:"slug" yaml:"slug" validate:"required,slug"`
	Description  string       `json:"description" yaml:"description" validate:"required"`
	PricingModel PricingModel `json:"pricing_model" yaml:"pricing_model" validate:"required,pricing_model"`
	Category     string       `json:"category" yaml:"category" validate:"required"`
	Icon         IconName     `json:"icon" yaml:"icon" validate:"required,icon"`
	Image        string       `json:"image,omitempty" yaml:"image,omitempty"`
	Popular      bool         `json:"popular,omitempty" yaml:"popular,omitempty"`
}

// ServiceCategory groups related services and doubles as a page anchor.
type ServiceCategory struct {
	ID          string    `json:"id" yaml:"id" validate:"required"`
	Name        string    `json:"name" yaml:"name" validate:"required"`
	Slug        string    `json:"slug" yaml:"slug" validate:"required,slug"`
	Description string    `json:"description" yaml:"description" validate:"required"`
	Icon        IconName  `json:"icon" yaml:"icon" validate:"required,icon"`
	Color       string    `json:"color" yaml:"color" validate:"required"`
	Image       string    `json:"image,omitempty" yaml:"image,omitempty"`
	Services    []Service `json:"services" yaml:"services" validate:"required,min=1,dive"`
}

// CatalogStats summarises the catalog for hero sections and the API.
type CatalogStats struct {
	Categories int `json:"categories"`
	Services   int `json:"services"`
	Popular    int `json:"popular"`
}

// CatalogUsecase exposes read-only views over the service catalog.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) []ServiceCategory
	GetCategory(ctx context.Context, slug string) (*ServiceCategory, error)
	ListServices(ctx context.Context, query string) []Service
	ListPopularServices(ctx context.Context) []Service
	GetService(ctx context.Context, slug string) (*Service, error)
	Stats(ctx context.Context) CatalogStats
	// ExportPriceList renders the catalog as an xlsx workbook and returns its bytes and file name.
	ExportPriceList(ctx context.Context) ([]byte, string, error)
}
