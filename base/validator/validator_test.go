package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftswap/domain"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) SetupTest() {
}

func (s *ValidatorTestSuite) TearDownTest() {
}

func (s *ValidatorTestSuite) SetupSuite() {
}

func (s *ValidatorTestSuite) TearDownSuite() {
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address - real address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

type form struct {
	NftContract string `json:"nftContract" validate:"required,eth_addr"`
	TokenId     string `json:"tokenId" validate:"required"`
}

func (s *ValidatorTestSuite) TestCustomValidator() {
	v := NewCustomValidator(New())

	s.NoError(v.Validate(&form{NftContract: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", TokenId: "1"}))

	err := v.Validate(&form{NftContract: "0x000", TokenId: "1"})
	var verr *domain.ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Equal("nftContract", verr.Field)
	s.Equal("is not a hex address", verr.Reason)

	err = v.Validate(&form{NftContract: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"})
	s.Require().True(errors.As(err, &verr))
	s.Equal("tokenId", verr.Field)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *ValidatorTestSuite) TestToValidationErrorPlainError() {
	s.Nil(ToValidationError(nil))
	s.ErrorIs(ToValidationError(errors.New("x")), domain.ErrValidation)
}
