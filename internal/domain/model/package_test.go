package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePackage(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantUnitCount int
		wantKind      UnitKind
		wantLabel     string
	}{
		{
			name:          "carton with piece count",
			text:          "كرتونة 12 قطعة",
			wantUnitCount: 12,
			wantKind:      UnitPiece,
			wantLabel:     "كرتونة قطعة",
		},
		{
			name:          "dozen package with count",
			text:          "دستة 4",
			wantUnitCount: 4,
			wantKind:      UnitDozen,
			wantLabel:     "دستة",
		},
		{
			name:          "short dozen marker",
			text:          "دست 2",
			wantUnitCount: 2,
			wantKind:      UnitDozen,
			wantLabel:     "دست",
		},
		{
			name:          "dozen marker without count",
			text:          "دستة",
			wantUnitCount: 0,
			wantKind:      UnitDozen,
			wantLabel:     "دستة",
		},
		{
			name:          "no digits degrades to custom",
			text:          "كرتونة",
			wantUnitCount: 0,
			wantKind:      UnitCustom,
			wantLabel:     "كرتونة",
		},
		{
			name:          "empty descriptor",
			text:          "",
			wantUnitCount: 0,
			wantKind:      UnitCustom,
			wantLabel:     "",
		},
		{
			name:          "only first digit run counts",
			text:          "كرتونة 6 في 4",
			wantUnitCount: 6,
			wantKind:      UnitPiece,
			wantLabel:     "كرتونة في",
		},
		{
			name:          "whitespace collapsed after digit removal",
			text:          "  كرتونة   24   قطعة  ",
			wantUnitCount: 24,
			wantKind:      UnitPiece,
			wantLabel:     "كرتونة قطعة",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := ParsePackage(tt.text)

			assert.Equal(t, tt.wantUnitCount, desc.UnitCount)
			assert.Equal(t, tt.wantKind, desc.Kind)
			assert.Equal(t, tt.wantLabel, desc.Label)
		})
	}
}

func TestPackageDescriptor_IsDozen(t *testing.T) {
	assert.True(t, ParsePackage("دستة 4").IsDozen())
	assert.False(t, ParsePackage("كرتونة 12 قطعة").IsDozen())
	assert.False(t, ParsePackage("كرتونة").IsDozen())
}

func TestTransferLineView_Transferable(t *testing.T) {
	assert.True(t, TransferLineView{Status: LineOK, Matched: true}.Transferable())
	assert.False(t, TransferLineView{Status: LineRejected, Matched: true}.Transferable())
	// An unmatched row has no cart quantity behind it.
	assert.False(t, TransferLineView{Status: LineOK}.Transferable())
}
