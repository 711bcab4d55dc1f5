package leadparse

import "errors"

var (
	errNotArray = errors.New("json value is not an array")
	errNoArray  = errors.New("no bracketed array in text")
	errNoBlocks = errors.New("no Company/Address/Email/Phone blocks in text")
)
