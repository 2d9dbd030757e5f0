package textfeed

import (
	"bufio"
	"io"
)

// Words reads r to exhaustion and returns its whitespace-delimited tokens in
// reading order. Runs of spaces, tabs and newlines all act as a single token
// separator; an input of pure whitespace yields no tokens.
func Words(r io.Reader) ([]string, error) {
	words := make([]string, 0, 64)
	err := EachWord(r, func(word string) error {
		words = append(words, word)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// EachWord is the streaming variant of Words: it calls f for every token as
// it is scanned off r. Scanning stops at the first callback error, which is
// returned to the caller.
func EachWord(r io.Reader, f func(word string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if err := f(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
