package exchange

import "errors"

var (
	ErrWrongStockType      = errors.New("stock type can only be buy or sell")
	ErrDuplicateStock      = errors.New("stock already exists")
	ErrWrongObjectType     = errors.New("object is not a well-formed stock")
	ErrWrongStockQuantity  = errors.New("stock quantity cannot go below zero")
	ErrStockNotFound       = errors.New("stock not found")
	ErrOutOfStock          = errors.New("ordered quantity not available at this time")
	ErrInvalidUser         = errors.New("no valid user passed")
	ErrInsufficientBalance = errors.New("not enough balance")
)
