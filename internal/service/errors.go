package service

import "errors"

var (
	ErrInvalidInput       = errors.New("price must be positive and stock non-negative")
	ErrDuplicateCode      = errors.New("item code already exists")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrInsufficientStock  = errors.New("insufficient stock remaining")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrStockBelowZero     = errors.New("adjustment would drive stock below zero")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
