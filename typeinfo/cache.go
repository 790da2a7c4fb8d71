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

package typeinfo

import (
	"fmt"
	"reflect"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"dirpx.dev/vrx/cache"
)

// Describer returns the Info of a type, possibly from a cache.
// Implementations are safe for concurrent use.
type Describer interface {
	Describe(t reflect.Type) Info
}

// NewDescriber returns a Describer memoizing Of according to policy.
// size bounds the cache when policy is cache.LRU.
func NewDescriber(policy cache.Policy, size int) (Describer, error) {
	switch policy {
	case cache.LRU:
		c, err := lru.New[reflect.Type, Info](size)
		if err != nil {
			return nil, fmt.Errorf("vrx(typeinfo): creating LRU cache: %w", err)
		}
		return &lruDescriber{c: c}, nil
	case cache.Unbounded:
		return &mapDescriber{}, nil
	case cache.None:
		return passthrough{}, nil
	default:
		return nil, fmt.Errorf("vrx(typeinfo): unsupported cache policy %v", policy)
	}
}

// lruDescriber keeps the most recently described types.
type lruDescriber struct {
	c *lru.Cache[reflect.Type, Info]
}

func (d *lruDescriber) Describe(t reflect.Type) Info {
	if t == nil {
		return Of(nil)
	}
	if info, ok := d.c.Get(t); ok {
		return info
	}
	info := Of(t)
	d.c.Add(t, info)
	return info
}

// mapDescriber keeps every described type for the lifetime of the process.
type mapDescriber struct {
	m sync.Map // map[reflect.Type]Info
}

func (d *mapDescriber) Describe(t reflect.Type) Info {
	if t == nil {
		return Of(nil)
	}
	if v, ok := d.m.Load(t); ok {
		return v.(Info)
	}
	info := Of(t)
	d.m.Store(t, info)
	return info
}

// passthrough computes every description.
type passthrough struct{}

func (passthrough) Describe(t reflect.Type) Info { return Of(t) }
