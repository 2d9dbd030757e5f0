// Command symtab builds an ordered symbol table from the words of a text
// and prints it. Words are read from a file or from stdin, each one becoming
// a key with its position in the input as the value. Repeated words simply
// overwrite the value, so the table ends up with one entry per distinct word.
//
// Printed are the table's entries in key order, followed by the keys in
// level order, which exposes the shape of the underlying tree. With flag
// -dot a Graphviz rendering of the tree is written to a file.
//
// Example:
//
//	echo "S E A R C H E X A M P L E" | symtab
package main

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/symtab"
	"github.com/npillmayer/symtab/textfeed"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

var config struct {
	file  string
	html  bool
	dot   string
	trace string
	async bool
}

func main() {
	flag.StringVar(&config.file, "file", "", "read words from a file instead of stdin")
	flag.BoolVar(&config.html, "html", false, "treat the input as HTML and index its inner text")
	flag.StringVar(&config.dot, "dot", "", "write a Graphviz rendering of the tree to a file")
	flag.StringVar(&config.trace, "trace", "Info", "trace level: Debug, Info or Error")
	flag.BoolVar(&config.async, "async", false, "stream words through a broadcast feed")
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	switch config.trace {
	case "Debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "Error":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	}
	grapheme.SetupGraphemeClasses()
	//
	words, err := collectWords()
	if err != nil {
		fail(err)
	}
	table := symtab.NewOrdered[string, int]()
	for pos, word := range words {
		if err := table.Put(word, pos); err != nil {
			fail(err)
		}
	}
	printPairs(table)
	printLevelOrder(table)
	if config.dot != "" {
		if err := writeDot(table, config.dot); err != nil {
			fail(err)
		}
	}
}

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "symtab:", err)
	os.Exit(1)
}

// collectWords gathers the input words, honoring the input flags.
func collectWords() ([]string, error) {
	if config.async {
		if config.html {
			return nil, fmt.Errorf("flags -async and -html cannot be combined")
		}
		return feedWords()
	}
	input, err := openInput()
	if err != nil {
		return nil, err
	}
	defer input.Close()
	if config.html {
		return textfeed.TokensFromHTML(input)
	}
	return textfeed.Words(input)
}

func openInput() (io.ReadCloser, error) {
	if config.file == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(config.file)
}

// feedWords collects the input words from an asynchronous broadcast feed
// instead of scanning them inline.
func feedWords() ([]string, error) {
	var feed *textfeed.Feed
	if config.file == "" {
		feed = textfeed.NewFeed(os.Stdin)
	} else {
		f, err := textfeed.Open(config.file)
		if err != nil {
			return nil, err
		}
		feed = f
	}
	defer feed.Close()
	tokens, unsubscribe := feed.Subscribe()
	defer unsubscribe()
	feed.Start()
	words := make([]string, 0, 64)
	for token := range tokens {
		if word, ok := token.(string); ok {
			words = append(words, word)
		}
	}
	return words, feed.Err()
}

// printPairs lists the table's entries in key order, one per line, with the
// key column aligned. Column width is measured in fixed-width character
// cells, so keys from East Asian scripts line up as well.
func printPairs(table *symtab.Table[string, int]) {
	context := uax11.ContextFromEnvironment()
	widest := 0
	for key := range table.RangeKeys() {
		if w := displayWidth(key, context); w > widest {
			widest = w
		}
	}
	keyink := color.New(color.FgBlue)
	valueink := color.New(color.FgRed)
	fmt.Printf("symbol table with %d entries, tree height %d\n", table.Size(), table.Height())
	for key, value := range table.RangePairs() {
		pad := strings.Repeat(" ", widest-displayWidth(key, context))
		fmt.Printf("   %s%s = %s\n", keyink.Sprint(key), pad, valueink.Sprintf("%d", value))
	}
}

// printLevelOrder lists the keys level by level, top of the tree first,
// wrapped to the width of the terminal.
func printLevelOrder(table *symtab.Table[string, int]) {
	if table.IsEmpty() {
		return
	}
	context := uax11.ContextFromEnvironment()
	linewidth := lineWidth()
	fmt.Println("keys in level order:")
	used, line := 0, make([]string, 0, 16)
	for key := range table.LevelOrder().RangeItems() {
		w := displayWidth(key, context) + 1
		if used+w > linewidth && len(line) > 0 {
			fmt.Printf("   %s\n", strings.Join(line, " "))
			used, line = 0, line[:0]
		}
		used += w
		line = append(line, key)
	}
	if len(line) > 0 {
		fmt.Printf("   %s\n", strings.Join(line, " "))
	}
}

// displayWidth is the number of fixed-width character cells s occupies on a
// terminal, as determined by grapheme clusters and their East Asian width.
func displayWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// lineWidth checks wether stdout is a terminal, and if so reads the
// terminal's width to wrap output lines accordingly.
func lineWidth() int {
	linewidth := 65
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil {
			if w > 65 {
				linewidth = w - 10
			} else if w > 30 {
				linewidth = w - 5
			} else if w > 10 {
				linewidth = w
			} else {
				linewidth = 10
			}
		}
	}
	tracer().P("cmd", "symtab").Infof("setting line length to %d en", linewidth)
	return linewidth
}

func writeDot(table *symtab.Table[string, int], path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	symtab.Table2Dot(table, out)
	return out.Close()
}
