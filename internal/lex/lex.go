/*
 * Copyright 2020 Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package lex

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	eof = -1

	// Newlines are significant and are not included.
	blankRunes = " \t\r\f\v"

	digitRunes = "0123456789"
)

// The state of the scanner as a function that returns the next state.
type stateFn func(*Lexer) stateFn

// Lexer represents the state of scanning a transmission file. Each line of the
// file holds at most one transmission, optionally followed by a separator and
// the expected result, and optionally ending in a comment:
//
//	# version sums
//	8A004A801A8002F478 - 16
//	620080001611562C8802118E34 -> 12  // nested count mode
type Lexer struct {
	input     []byte    // the data being scanned
	state     stateFn   // the next lexing function to enter
	pos       int       // current position in the input
	itemStart int       // start position of the current item
	width     int       // width of last rune read from input
	lastPos   int       // position of most recent item returned by NextItem
	items     chan Item // channel of scanned items
}

// New creates a new scanner for the input data. The lexer only splits lines into
// items; transmissions are validated when they are decoded.
func New(input []byte) *Lexer {
	x := &Lexer{
		input: input,
		items: make(chan Item),
	}
	go x.run()
	return x
}

// NextItem returns the next item from the input.
func (x *Lexer) NextItem() Item {
	item := <-x.items
	x.lastPos = item.Pos
	return item
}

// Drain consumes the remaining items so the scanning goroutine can exit.
func (x *Lexer) Drain() {
	for {
		switch x.NextItem().Type {
		case ItemEOF, ItemError:
			return
		}
	}
}

// LineNumber returns the line number that the Lexer last stopped at.
func (x *Lexer) LineNumber() int {
	// Count the number of newlines, then add 1 for the line we're currently on.
	return bytes.Count(x.input[:x.lastPos], []byte("\n")) + 1
}

// run the state machine for the Lexer.
func (x *Lexer) run() {
	for x.state = lexLine; x.state != nil; {
		x.state = x.state(x)
	}
}

// next returns the next rune in the input.  If there is a problem decoding
// the rune, then utf8.RuneError is returned.
func (x *Lexer) next() rune {
	if x.pos >= len(x.input) {
		x.width = 0
		return eof
	}
	r, w := utf8.DecodeRune(x.input[x.pos:])
	x.width = w
	x.pos += x.width
	return r
}

// peek returns, but does not consume, the next rune from the input.
func (x *Lexer) peek() rune {
	if x.pos >= len(x.input) {
		return eof
	}
	r, _ := utf8.DecodeRune(x.input[x.pos:])
	return r
}

// backup steps back one rune. Can only be called once per call of next().
func (x *Lexer) backup() {
	x.pos -= x.width
}

// emit sends an item representing the current Lexer state and the given type
// onto the items channel.
func (x *Lexer) emit(it itemType) {
	x.items <- Item{Type: it, Pos: x.itemStart, Val: x.input[x.itemStart:x.pos]}
	x.itemStart = x.pos
}

// ignore sets the itemStart point to the current position, thereby "ignoring" any
// input between the two points.
func (x *Lexer) ignore() {
	x.itemStart = x.pos
}

// errorf emits an error token and returns nil to stop lexing.
func (x *Lexer) errorf(format string, args ...interface{}) stateFn {
	x.items <- Item{Type: ItemError, Pos: x.itemStart, Val: []byte(fmt.Sprintf(format, args...))}
	return nil
}

// lexLine scans the start of a line, which can be blank, a comment, or a
// transmission.
func lexLine(x *Lexer) stateFn {
	eatBlanks(x)
	switch ch := x.peek(); {
	case ch == eof:
		x.emit(ItemEOF)
		return nil
	case ch == '\n':
		x.next()
		x.emit(ItemNewline)
		return lexLine
	case isCommentStart(x):
		return lexComment
	default:
		return lexTransmission
	}
}

// lexComment scans a "#" or "//" comment up to, but not including, the end of
// the line.
func lexComment(x *Lexer) stateFn {
	for ch := x.peek(); ch != '\n' && ch != eof; ch = x.peek() {
		if x.next() == utf8.RuneError {
			return x.errorf("error parsing rune")
		}
	}
	x.emit(ItemComment)
	return lexLine
}

// lexTransmission scans everything up to the next blank, newline or comment.
func lexTransmission(x *Lexer) stateFn {
	for ch := x.peek(); !isBlank(ch) && ch != '\n' && ch != eof && !isCommentStart(x); ch = x.peek() {
		x.next()
	}
	x.emit(ItemTransmission)
	return lexAfterTransmission
}

// lexAfterTransmission scans for the separator introducing an expected result.
func lexAfterTransmission(x *Lexer) stateFn {
	eatBlanks(x)
	switch ch := x.peek(); {
	case ch == eof || ch == '\n' || isCommentStart(x):
		return lexLine
	case ch == '-' || ch == '=':
		x.next()
		x.accept(">")
		x.emit(ItemSeparator)
		return lexExpected
	default:
		return x.errorf("unexpected %v after transmission", describe(ch))
	}
}

// lexExpected scans the decimal number following a separator.
func lexExpected(x *Lexer) stateFn {
	eatBlanks(x)
	if x.acceptRun(digitRunes) == 0 {
		return x.errorf("expected a number after the separator, found %v", describe(x.peek()))
	}
	x.emit(ItemNumber)
	return lexLineEnd
}

// lexLineEnd makes sure nothing but a comment follows an expected result.
func lexLineEnd(x *Lexer) stateFn {
	eatBlanks(x)
	if ch := x.peek(); ch != eof && ch != '\n' && !isCommentStart(x) {
		return x.errorf("unexpected %v at end of line", describe(ch))
	}
	return lexLine
}

// eatBlanks eats up all of the blanks until a newline or other character is
// encountered.
func eatBlanks(x *Lexer) {
	for isBlank(x.peek()) {
		x.next()
	}
	x.ignore()
}

// isBlank returns if the given rune is whitespace other than a newline.
func isBlank(ch rune) bool {
	return ch != eof && strings.ContainsRune(blankRunes, ch)
}

// describe names a rune for error messages.
func describe(ch rune) string {
	switch ch {
	case eof:
		return "end of input"
	case '\n':
		return "end of line"
	}
	return fmt.Sprintf("%#U", ch)
}

// isCommentStart returns true if the upcoming input starts a comment.
func isCommentStart(x *Lexer) bool {
	rest := x.input[x.pos:]
	return bytes.HasPrefix(rest, []byte("#")) || bytes.HasPrefix(rest, []byte("//"))
}

// accept consumes the next rune if it's from the given set of valid runes.
func (x *Lexer) accept(valid string) bool {
	if strings.IndexRune(valid, x.peek()) >= 0 {
		x.next()
		return true
	}
	return false
}

// acceptRun consumes as many runes as possible from the given set of valid runes.
func (x *Lexer) acceptRun(valid string) int {
	count := 0
	// Use peek so that we can still back up if the rune we fail on is EOF.
	for ch := x.peek(); ch != eof && strings.IndexRune(valid, ch) >= 0; ch = x.peek() {
		x.next()
		count++
	}
	return count
}
