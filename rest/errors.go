package rest

import (
	"errors"
)

var (
	ErrBadSymbol        = errors.New("unknown trading symbol")
	ErrBadCurrency      = errors.New("unknown currency")
	ErrBadDepositMethod = errors.New("unknown deposit method")
	ErrBadWalletType    = errors.New("unknown wallet type")
	ErrBadOrderType     = errors.New("unknown order type")

	ErrMissingWithdrawParams = errors.New("withdraw config is missing required parameters")
	ErrMissingWireParams     = errors.New("withdraw config is missing wire transfer parameters")
	ErrMissingAddressParam   = errors.New("withdraw config is missing the destination address")
)
