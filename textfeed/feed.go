package textfeed

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/guiguan/caster"
)

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

// Some constants for scan buffer size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// subscriberBuffer is the channel capacity handed to every subscriber.
const subscriberBuffer = 64

// Feed scans a text source for whitespace-delimited tokens and broadcasts
// them to all subscribers. Scanning happens on a background goroutine,
// started with Start; subscribers receive the tokens published after their
// subscription and see their channel closed when the source is exhausted.
// Subscribers are expected to drain their channel until it closes.
//
// A feed is a one-shot device: it scans its source exactly once and cannot
// be restarted.
type Feed struct {
	src       io.Reader
	closer    io.Closer // set when the feed owns the source
	cast      *caster.Caster
	bufinit   int // initial scan buffer size, 0 = scanner default
	bufmax    int // max token size, 0 = scanner default
	closeOnce sync.Once
	mx        sync.Mutex // guards started and lastError
	started   bool
	lastError error // first error seen; read through Err
}

// NewFeed creates a feed reading tokens from r. The feed does not close r.
func NewFeed(r io.Reader) *Feed {
	return &Feed{
		src:  r,
		cast: caster.New(nil), // we will broadcast tokens as they are scanned
	}
}

// Open creates a feed for a file, which must be a regular text file. The
// scan buffer is sized from the file size; the file is closed when the feed
// finishes scanning it.
func Open(name string) (*Feed, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	feed := NewFeed(file)
	feed.closer = file
	feed.bufinit, feed.bufmax = bufferSizes(fi.Size())
	tracer().Debugf("feed opened %q (%d bytes), scan buffer %d/%d",
		name, fi.Size(), feed.bufinit, feed.bufmax)
	return feed, nil
}

// bufferSizes picks sensible scan buffer defaults from the size of the
// input. Small files get along with tiny buffers; large files may carry
// large unbroken tokens and get headroom for them.
func bufferSizes(size int64) (initial, max int) {
	if size < 64 {
		return 64, twoKb
	} else if size < tenKb {
		return 256, tenKb
	} else if size < hundredKb {
		return 512, hundredKb
	} else if size < oneMb {
		return twoKb, oneMb
	}
	return sixKb, oneMb
}

// Subscribe registers a consumer of the token stream and returns its channel
// together with an unsubscribe function. Every message on the channel is a
// token of type string; the channel is closed when the source is exhausted
// or the feed is closed. Subscribing to a finished feed yields a closed
// channel.
func (f *Feed) Subscribe() (<-chan interface{}, func()) {
	ch, ok := f.cast.Sub(nil, subscriberBuffer)
	if !ok { // feed already closed: hand out a drained channel
		done := make(chan interface{})
		close(done)
		return done, func() {}
	}
	return ch, func() { f.cast.Unsub(ch) }
}

// Start launches the scanning goroutine. Tokens are published to all
// subscribers in reading order; when the source is exhausted the broadcast
// is closed, closing every subscriber channel. Start is a no-op on a feed
// that has already been started.
func (f *Feed) Start() {
	f.mx.Lock()
	if f.started {
		f.mx.Unlock()
		return
	}
	f.started = true
	f.mx.Unlock()
	go func() {
		scanner := bufio.NewScanner(f.src)
		if f.bufmax > 0 {
			scanner.Buffer(make([]byte, f.bufinit), f.bufmax)
		}
		scanner.Split(bufio.ScanWords)
		count := 0
		for scanner.Scan() {
			f.cast.Pub(scanner.Text())
			count++
		}
		if err := scanner.Err(); err != nil {
			f.setError(fmt.Errorf("error scanning token feed: %w", err))
			tracer().Errorf("token feed: %s", err.Error())
		}
		tracer().Debugf("feed exhausted after %d tokens", count)
		f.shutdown()
	}()
}

// shutdown releases the source, if the feed owns it, and closes the
// broadcast. It runs at most once, no matter how often the feed is closed.
// The source is released first so that an error from it is still visible
// through Err when the subscriber channels close.
func (f *Feed) shutdown() {
	f.closeOnce.Do(func() {
		if f.closer != nil {
			if err := f.closer.Close(); err != nil {
				f.setError(err)
			}
		}
		f.cast.Close()
	})
}

// setError records the first error seen by the feed; later errors are
// dropped.
func (f *Feed) setError(err error) {
	f.mx.Lock()
	if f.lastError == nil {
		f.lastError = err
	}
	f.mx.Unlock()
}

// Err returns the first error encountered while scanning the source. It is
// reliable once the subscriber channels have been closed.
func (f *Feed) Err() error {
	f.mx.Lock()
	defer f.mx.Unlock()
	return f.lastError
}

// Close shuts the broadcast down, closing all subscriber channels. Feeds
// close themselves when their source is exhausted; calling Close is only
// needed to abandon a feed early. Closing a finished feed is a no-op.
func (f *Feed) Close() error {
	f.shutdown()
	return f.Err()
}
