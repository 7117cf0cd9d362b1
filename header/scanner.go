// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package header

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var keyRegex = regexp.MustCompile("^[a-zA-Z0-9-_]+$")

// Scanner scans the key/value entries of a header from start to end. The end
// of the header is the first empty line or the end of the input.
type Scanner struct {
	s     *bufio.Scanner
	key   string
	value string
	line  int
	err   error
	done  bool
}

// NewScanner returns a new Scanner reading from r. It returns an error
// wrapping ErrUnsupportedFormat if r does not start with Magic.
func NewScanner(r io.Reader) (*Scanner, error) {
	s := &Scanner{
		s: bufio.NewScanner(r),
	}
	s.s.Buffer(make([]byte, 0, 4096), maxHeaderSize)

	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return nil, fmt.Errorf("reading header: %w", err)
		}
		return nil, fmt.Errorf("%w: empty header", ErrUnsupportedFormat)
	}
	s.line++
	if strings.TrimRight(s.s.Text(), "\r") != Magic {
		return nil, fmt.Errorf("%w: bad magic data", ErrUnsupportedFormat)
	}

	return s, nil
}

// Scan advances to the next entry. It returns false at the end of the header
// or on error.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	if !s.s.Scan() {
		s.done = true
		if err := s.s.Err(); err != nil {
			s.err = fmt.Errorf("reading header: %w", err)
		}
		return false
	}
	s.line++

	line := strings.TrimRight(s.s.Text(), "\r")
	if strings.TrimSpace(line) == "" {
		// An empty line ends the header. Payload data may follow.
		s.done = true
		return false
	}

	key, value, ok := strings.Cut(line, "=")
	key = strings.TrimRight(key, " ")
	if !ok || !keyRegex.MatchString(key) {
		s.done = true
		s.err = fmt.Errorf("%w: line %d: invalid entry %q", ErrUnsupportedFormat, s.line, line)
		return false
	}

	s.key = key
	s.value = strings.TrimLeft(value, " ")
	return true
}

// Key returns the key of the current entry.
func (s *Scanner) Key() string {
	return s.key
}

// Value returns the value of the current entry.
func (s *Scanner) Value() string {
	return s.value
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}
