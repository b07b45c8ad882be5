package unit

import (
	"errors"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of decimals between ether and wei.
const EtherDecimals = 18

// uint256Digits is the digit count of the largest uint256.
const uint256Digits = 78

var (
	ErrEmpty         = errors.New("amount is empty")
	ErrNotNumeric    = errors.New("amount is not a number")
	ErrNotPositive   = errors.New("amount must be greater than zero")
	ErrTooManyDigits = errors.New("amount has more decimal places than the currency supports")
	ErrTooLarge      = errors.New("amount does not fit in uint256 minor units")
)

// Converter scales human readable decimal amounts ("1.5") to integer minor
// units and back, using a fixed number of decimals.
type Converter struct {
	decimals int32
}

func NewConverter(decimals int32) *Converter {
	return &Converter{decimals: decimals}
}

// NewEtherConverter converts between ether and wei.
func NewEtherConverter() *Converter {
	return NewConverter(EtherDecimals)
}

func (c *Converter) Decimals() int32 {
	return c.decimals
}

// ToMinorUnits parses amount and returns amount * 10^decimals. The result is
// exact, an amount that can't be represented in whole minor units is rejected.
func (c *Converter) ToMinorUnits(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, ErrEmpty
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, ErrNotNumeric
	}
	if d.Sign() <= 0 {
		return nil, ErrNotPositive
	}

	// d is coefficient * 10^exp, bound the scaled value before building it
	digits := int64(len(d.Coefficient().String()))
	exp := int64(d.Exponent()) + int64(c.decimals)
	if digits+exp > uint256Digits {
		return nil, ErrTooLarge
	}
	if exp < 0 && -exp >= digits {
		return nil, ErrTooManyDigits
	}

	scaled := d.Shift(c.decimals)
	if !scaled.IsInteger() {
		return nil, ErrTooManyDigits
	}
	res := scaled.BigInt()
	if res.BitLen() > 256 {
		return nil, ErrTooLarge
	}
	return res, nil
}

// FromMinorUnits returns the display amount of value.
func (c *Converter) FromMinorUnits(value *big.Int) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -c.decimals)
}
