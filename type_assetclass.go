package portfolio

import (
	"errors"
	"fmt"
)

// AssetClass is the allocation bucket of a holding. It determines the fee and
// tax treatment of the position. Cash is never an asset class: it is the
// remainder computed by Aggregate.
type AssetClass string

const (
	Stock AssetClass = "Stock"
	Bond  AssetClass = "Bond"
)

func (c AssetClass) String() string { return string(c) }

// ErrUnknownAssetClass is returned when a tag is neither Stock nor Bond.
var ErrUnknownAssetClass = errors.New("unknown asset class")

// ParseAssetClass parses the literal tags "Stock" and "Bond".
func ParseAssetClass(s string) (AssetClass, error) {
	switch AssetClass(s) {
	case Stock, Bond:
		return AssetClass(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAssetClass, s)
	}
}

// Field identifies the holding field a user edits. See Recalculate.
type Field int

const (
	// Shares drives both current value and cost.
	Shares Field = iota
	// AvgCostPrice drives cost.
	AvgCostPrice
	// Cost is a direct override, the average cost price is back-solved.
	Cost
	// CurrentMarketPrice drives current value.
	CurrentMarketPrice
	// CurrentValue is a direct override, the market price is back-solved.
	CurrentValue
)

func (f Field) String() string {
	switch f {
	case Shares:
		return "shares"
	case AvgCostPrice:
		return "avg-price"
	case Cost:
		return "cost"
	case CurrentMarketPrice:
		return "price"
	case CurrentValue:
		return "value"
	default:
		return "unknown"
	}
}

// ErrUnknownField is returned by ParseField.
var ErrUnknownField = errors.New("unknown field")

// Fields lists every editable field, in declaration order.
var Fields = []Field{Shares, AvgCostPrice, Cost, CurrentMarketPrice, CurrentValue}

// ParseField parses a field name as printed by Field.String.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}
