/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cache defines the memoization policies available to vrx caches.
package cache

import (
	"fmt"
	"strings"
)

// Policy controls how a vrx cache retains entries over time.
//
// # Overview
//
// Policy is a small enumerated type that selects a broad class of
// memoization behavior for caches whose entries are pure functions of
// their key (for example, the type description derived from a
// reflect.Type). Because every entry can be recomputed at any time, the
// choice of policy never changes observable results, only memory and CPU
// trade-offs.
//
// # Values
//
//   - LRU       - bounded, least recently used entries are evicted.
//   - Unbounded - entries are kept for the lifetime of the process.
//   - None      - caching disabled (every lookup recomputes).
//
// # Contract
//
//   - Existing values MUST NOT change their semantics.
//   - Policy values are plain integers and safe for concurrent use.
type Policy int

const (
	// LRU selects a bounded cache with least recently used eviction.
	//
	// The capacity is configured separately (Config.TypeCacheSize).
	// Recommended for long debug sessions over programs with many
	// distinct types, where an unbounded map could grow without limit.
	LRU Policy = iota

	// Unbounded keeps every entry for the lifetime of the process.
	//
	// Lookups are lock-free reads on a sync.Map. Recommended when the
	// set of types seen is small and known to be bounded.
	Unbounded

	// None disables caching.
	//
	// Lookups always miss and writes are dropped. Primarily useful for
	// tests and for comparing behavior with and without caching.
	None
)

// String returns a human-readable representation of the Policy value.
// Unknown values are rendered as "Unknown(<n>)" and never panic.
func (p Policy) String() string {
	switch p {
	case LRU:
		return "LRU"
	case Unbounded:
		return "Unbounded"
	case None:
		return "None"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// Parse parses a textual representation of a Policy.
//
// Matching is case-insensitive and surrounding whitespace is ignored.
// On failure, Parse returns None and a non-nil error.
//
// Example:
//
//	p, err := Parse("lru")
//	if err != nil {
//	    // handle invalid configuration
//	}
//	_ = p // LRU
func Parse(s string) (Policy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return None, fmt.Errorf("cache: empty policy")
	}

	switch strings.ToUpper(trimmed) {
	case "LRU":
		return LRU, nil
	case "UNBOUNDED":
		return Unbounded, nil
	case "NONE":
		return None, nil
	default:
		return None, fmt.Errorf("cache: unknown policy %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
// Callers MUST NOT use it on user-supplied data.
func MustParse(s string) Policy {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText implements encoding.TextMarshaler.
// Unknown values are rejected rather than serialized as "Unknown(...)".
func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case LRU, Unbounded, None:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("cache: cannot marshal unknown policy %d", p)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// On failure the receiver is left unchanged.
func (p *Policy) UnmarshalText(text []byte) error {
	value, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = value
	return nil
}
