// Package service contains the business logic for the transfer gateway.
package service

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
)

// Legacy conversion constants. A dozen always means 12 pieces and the
// retail destination unit ("شيالة") always groups 3 pieces. Both are
// overridable per deployment via options.
const (
	DefaultPiecesPerDozen      = 12
	DefaultPiecesPerRetailUnit = 3
)

// Conversion is the outcome of converting a wholesale carton quantity
// into retail destination units.
type Conversion struct {
	// ToQuantity is the destination-unit quantity, rounded half-up.
	ToQuantity int `json:"to_quantity"`
	// UnitName is the package label with digits stripped.
	UnitName string `json:"unit_name"`
}

// UnitConverter converts requested wholesale carton quantities into
// equivalent retail unit quantities based on the package descriptor.
type UnitConverter interface {
	Convert(desc model.PackageDescriptor, cartons int) Conversion
	ConvertText(packageText string, cartons int) Conversion
}

// ConverterOption configures a UnitConverterService.
type ConverterOption func(*UnitConverterService)

// WithPiecesPerDozen overrides how many pieces one dozen denotes.
func WithPiecesPerDozen(n int) ConverterOption {
	return func(s *UnitConverterService) {
		if n > 0 {
			s.piecesPerDozen = n
		}
	}
}

// WithPiecesPerRetailUnit overrides how many pieces the retail
// destination unit groups.
func WithPiecesPerRetailUnit(n int) ConverterOption {
	return func(s *UnitConverterService) {
		if n > 0 {
			s.piecesPerRetailUnit = n
		}
	}
}

// UnitConverterService implements UnitConverter with the fixed legacy
// rule order: explicit piece counts multiply, dozen packages expand to
// pieces and regroup into retail units, descriptors without digits pass
// the carton quantity through unchanged.
type UnitConverterService struct {
	piecesPerDozen      int
	piecesPerRetailUnit int
}

// NewUnitConverterService creates a new UnitConverterService with the given options.
func NewUnitConverterService(opts ...ConverterOption) *UnitConverterService {
	s := &UnitConverterService{
		piecesPerDozen:      DefaultPiecesPerDozen,
		piecesPerRetailUnit: DefaultPiecesPerRetailUnit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert maps a carton quantity to destination units. Rule order matters:
// the dozen branch wins over the explicit-count branch even when both
// apply, matching how the legacy descriptors are written.
func (s *UnitConverterService) Convert(desc model.PackageDescriptor, cartons int) Conversion {
	conv := Conversion{UnitName: desc.Label}

	switch {
	case desc.IsDozen():
		if desc.UnitCount == 0 {
			// Per the formula this yields zero, not an error. It signals a
			// malformed descriptor, so make it visible.
			log.Warn().
				Str("label", desc.Label).
				Msg("Dozen package without a unit count, converted quantity is zero")
		}
		pieces := float64(cartons) * float64(desc.UnitCount) * float64(s.piecesPerDozen)
		conv.ToQuantity = roundHalfUp(pieces / float64(s.piecesPerRetailUnit))
	case desc.UnitCount > 0:
		conv.ToQuantity = cartons * desc.UnitCount
	default:
		// No digits found: pass-through, no conversion.
		conv.ToQuantity = cartons
	}

	return conv
}

// ConvertText parses the free-text descriptor and converts in one step.
func (s *UnitConverterService) ConvertText(packageText string, cartons int) Conversion {
	return s.Convert(model.ParsePackage(packageText), cartons)
}

// roundHalfUp rounds to the nearest integer, ties away from zero.
// Quantities are never negative here, so this is round-half-up.
func roundHalfUp(v float64) int {
	return int(math.Round(v))
}
