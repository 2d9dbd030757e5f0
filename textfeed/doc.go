/*
Package textfeed turns text sources into streams of whitespace-delimited
tokens, ready to be fed into a symbol table.

Tokens may be collected synchronously (Words, EachWord), extracted from the
inner text of HTML fragments (TokensFromHTML), or broadcast asynchronously to
any number of subscribers while a source is being scanned (Feed).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfeed

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'symtab'
func tracer() tracing.Trace {
	return tracing.Select("symtab")
}
