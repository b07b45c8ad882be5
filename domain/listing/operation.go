package listing

import (
	"math/big"

	"github.com/x-xyz/nftswap/domain"
)

type OperationType string

const (
	OperationCreate   OperationType = "create"
	OperationReprice  OperationType = "reprice"
	OperationRevoke   OperationType = "revoke"
	OperationPurchase OperationType = "purchase"
)

// Operation is one of Create, Reprice, Revoke or Purchase. Each variant
// carries exactly the fields its ledger call takes.
type Operation interface {
	Type() OperationType
	ListingKey() Key
	// Validate checks the operation without contacting the ledger and
	// returns a *domain.ValidationError.
	Validate() error

	isOperation()
}

type Create struct {
	Target Key
	Price  *big.Int
}

type Reprice struct {
	Target   Key
	NewPrice *big.Int
}

type Revoke struct {
	Target Key
}

// Purchase pays Price, which must equal the asking price.
type Purchase struct {
	Target Key
	Price  *big.Int
}

func (Create) Type() OperationType   { return OperationCreate }
func (Reprice) Type() OperationType  { return OperationReprice }
func (Revoke) Type() OperationType   { return OperationRevoke }
func (Purchase) Type() OperationType { return OperationPurchase }

func (o Create) ListingKey() Key   { return o.Target }
func (o Reprice) ListingKey() Key  { return o.Target }
func (o Revoke) ListingKey() Key   { return o.Target }
func (o Purchase) ListingKey() Key { return o.Target }

func (Create) isOperation()   {}
func (Reprice) isOperation()  {}
func (Revoke) isOperation()   {}
func (Purchase) isOperation() {}

func (o Create) Validate() error {
	if err := validateKey(o.Target); err != nil {
		return err
	}
	return validatePrice("price", o.Price)
}

func (o Reprice) Validate() error {
	if err := validateKey(o.Target); err != nil {
		return err
	}
	return validatePrice("newPrice", o.NewPrice)
}

func (o Revoke) Validate() error {
	return validateKey(o.Target)
}

func (o Purchase) Validate() error {
	if err := validateKey(o.Target); err != nil {
		return err
	}
	return validatePrice("price", o.Price)
}

func validateKey(k Key) error {
	if k.NftContract.IsEmpty() {
		return domain.NewValidationError("nftContract", "is required")
	}
	if !k.NftContract.IsHex() {
		return domain.NewValidationError("nftContract", "is not a hex address")
	}
	if k.TokenId == "" {
		return domain.NewValidationError("tokenId", "is required")
	}
	if _, err := domain.ParseTokenId(k.TokenId.String()); err != nil {
		return domain.NewValidationError("tokenId", err.Error())
	}
	return nil
}

func validatePrice(field string, price *big.Int) error {
	if price == nil {
		return domain.NewValidationError(field, "is required")
	}
	if price.Sign() <= 0 {
		return domain.NewValidationError(field, "must be greater than zero")
	}
	return nil
}
