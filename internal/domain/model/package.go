// Package model defines the core domain entities for the transfer gateway.
package model

import (
	"regexp"
	"strconv"
	"strings"
)

// UnitKind classifies how a wholesale package descriptor is denominated.
type UnitKind string

const (
	// UnitPiece means the descriptor states a plain piece count per carton.
	UnitPiece UnitKind = "piece"
	// UnitDozen means the stated count denotes dozens ("دستة"), 12 pieces each.
	UnitDozen UnitKind = "dozen"
	// UnitCustom means no numeric count could be extracted from the descriptor.
	UnitCustom UnitKind = "custom"
)

// dozenMarker is the substring that marks a dozen-denominated package
// in the legacy free-text descriptors ("دستة", "دست").
const dozenMarker = "دست"

var digitRun = regexp.MustCompile(`[0-9]+`)

// PackageDescriptor is the structured form of the legacy free-text
// wholesale package field (e.g. "كرتونة 12 قطعة", "دستة 4").
//
// @Description Parsed wholesale package descriptor
type PackageDescriptor struct {
	// UnitCount is the first number found in the descriptor, 0 if none.
	UnitCount int `json:"unit_count" example:"12"`
	// Kind classifies the descriptor denomination.
	Kind UnitKind `json:"kind" example:"piece"`
	// Label is the descriptor text with digits removed and whitespace trimmed.
	Label string `json:"label" example:"كرتونة قطعة"`
} // @name PackageDescriptor

// ParsePackage normalizes a free-text wholesale package descriptor into a
// PackageDescriptor. Parsing is deliberately tolerant: descriptors that
// carry no digit run degrade to UnitCustom and are handled as pass-through
// by the converter.
func ParsePackage(text string) PackageDescriptor {
	desc := PackageDescriptor{
		Label: strings.TrimSpace(collapseSpaces(digitRun.ReplaceAllString(text, ""))),
	}

	if m := digitRun.FindString(text); m != "" {
		// The digit run is bounded in practice; overflow only on garbage input.
		if n, err := strconv.Atoi(m); err == nil {
			desc.UnitCount = n
		}
	}

	switch {
	case strings.Contains(strings.ToLower(text), dozenMarker):
		desc.Kind = UnitDozen
	case desc.UnitCount > 0:
		desc.Kind = UnitPiece
	default:
		desc.Kind = UnitCustom
	}

	return desc
}

// IsDozen reports whether the package is denominated in dozens.
func (d PackageDescriptor) IsDozen() bool {
	return d.Kind == UnitDozen
}

// collapseSpaces squeezes runs of whitespace left behind by digit removal.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
