package msp

import "errors"

var (
	ErrChecksumMismatch  = errors.New("msp: checksum mismatch")
	ErrPayloadTooLarge   = errors.New("msp: payload exceeds generation limit")
	ErrCommandRange      = errors.New("msp: command id not representable in v1")
	ErrInvalidDirection  = errors.New("msp: invalid direction byte")
	ErrUnknownGeneration = errors.New("msp: unknown protocol generation")
)
