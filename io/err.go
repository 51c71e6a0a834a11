package io

import (
	"errors"

	"github.com/ezrec/shyasm/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageSize     = errors.New(f("image is not a whole number of words"))
	ErrImageTooLarge = errors.New(f("image is larger than memory"))
)

// ErrSymbolAddress reports a symbol map entry that is not an address.
type ErrSymbolAddress struct {
	Label string
	Value string
}

func (err ErrSymbolAddress) Error() string {
	return f("symbol %v: %v is not an address", err.Label, err.Value)
}
