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

package dictid

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-dictinfo/locale"
)

func TestCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       string
		category string
		ok       bool
		isMain   bool
	}{
		{
			id:       "main:en",
			category: "main",
			ok:       true,
			isMain:   true,
		},
		{
			id:       "other:en",
			category: "other",
			ok:       true,
		},
		{
			id: "main",
		},
		{
			id: "a:b:c",
		},
		{
			id: "main:",
		},
		{
			id: ":en",
		},
		{
			id: "",
		},
	}

	for _, test := range tests {
		t.Run(test.id, func(t *testing.T) {
			t.Parallel()

			category, ok := Category(test.id)
			if ok != test.ok {
				t.Fatalf("Category(%q): want ok: %v, got: %v", test.id, test.ok, ok)
			}
			if diff := cmp.Diff(test.category, category); diff != "" {
				t.Fatalf("Category (-want, +got):\n%s", diff)
			}
			if got := IsMain(test.id); got != test.isMain {
				t.Fatalf("IsMain(%q): want: %v, got: %v", test.id, test.isMain, got)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	id := Format("main", "en_US")
	if diff := cmp.Diff("main:en_US", id); diff != "" {
		t.Fatalf("Format (-want, +got):\n%s", diff)
	}
	localeTag, ok := Locale(id)
	if !ok {
		t.Fatalf("Locale(%q): not ok", id)
	}
	if diff := cmp.Diff("en_US", localeTag); diff != "" {
		t.Fatalf("Locale (-want, +got):\n%s", diff)
	}
}

func TestMainID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale   locale.Locale
		expected string
	}{
		{
			locale:   locale.New("en", "US", ""),
			expected: "main:en",
		},
		{
			locale:   locale.New("fr", "", ""),
			expected: "main:fr",
		},
	}

	for _, test := range tests {
		t.Run(test.locale.String(), func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, MainID(test.locale)); diff != "" {
				t.Fatalf("MainID (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	name := FileName("main:en_US")
	if diff := cmp.Diff("main%00003aen_US", name); diff != "" {
		t.Fatalf("FileName (-want, +got):\n%s", diff)
	}

	id, err := FromFileName(name)
	if err != nil {
		t.Fatalf("FromFileName: %v", err)
	}
	if diff := cmp.Diff("main:en_US", id); diff != "" {
		t.Fatalf("FromFileName (-want, +got):\n%s", diff)
	}

	if _, err := FromFileName("main%00"); err == nil {
		t.Fatal("FromFileName: expected failure")
	}
}
