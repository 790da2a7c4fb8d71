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

package config

import (
	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/cache"
)

const (
	// DefaultMaxValueLen is the default for MaxValueLen.
	// It matches the largest value the front-end transport accepts per variable.
	DefaultMaxValueLen = 1000
	// DefaultMaxContainerLen is the default for MaxContainerLen.
	DefaultMaxContainerLen = 300
	// DefaultMaxItems is the default for MaxItems.
	DefaultMaxItems = 300
	// DefaultLazyPlaceholder is the default for LazyPlaceholder.
	DefaultLazyPlaceholder = "__pydevd_value_async"
	// DefaultReturnValuesName is the default for ReturnValuesName.
	DefaultReturnValuesName = "__pydevd_ret_val_dict"
	// DefaultLoadValuesAsync is the default for LoadValuesAsync.
	DefaultLoadValuesAsync = false
	// DefaultOutputEncoding is the default for OutputEncoding.
	DefaultOutputEncoding = "utf-8"
	// DefaultTypeCache is the default for TypeCache.
	DefaultTypeCache = cache.LRU
	// DefaultTypeCacheSize is the default for TypeCacheSize.
	DefaultTypeCacheSize = 1024
	// DefaultPresenters is the default for Presenters.
	DefaultPresenters = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxValueLen:      DefaultMaxValueLen,
		MaxContainerLen:  DefaultMaxContainerLen,
		MaxItems:         DefaultMaxItems,
		LazyPlaceholder:  DefaultLazyPlaceholder,
		ReturnValuesName: DefaultReturnValuesName,
		LoadValuesAsync:  DefaultLoadValuesAsync,
		OutputEncoding:   DefaultOutputEncoding,
		TypeCache:        DefaultTypeCache,
		TypeCacheSize:    DefaultTypeCacheSize,
		Presenters:       DefaultPresenters,
	}
}

// Sanitize replaces invalid knobs with their defaults.
// Non-positive sizes, empty names and unknown cache policies are reset.
func Sanitize(cfg apis.Config) apis.Config {
	if cfg.MaxValueLen <= 0 {
		cfg.MaxValueLen = DefaultMaxValueLen
	}
	if cfg.MaxContainerLen <= 0 {
		cfg.MaxContainerLen = DefaultMaxContainerLen
	}
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultMaxItems
	}
	if cfg.LazyPlaceholder == "" {
		cfg.LazyPlaceholder = DefaultLazyPlaceholder
	}
	if cfg.ReturnValuesName == "" {
		cfg.ReturnValuesName = DefaultReturnValuesName
	}
	if cfg.OutputEncoding == "" {
		cfg.OutputEncoding = DefaultOutputEncoding
	}
	switch cfg.TypeCache {
	case cache.LRU, cache.Unbounded, cache.None:
	default:
		cfg.TypeCache = DefaultTypeCache
	}
	if cfg.TypeCacheSize <= 0 {
		cfg.TypeCacheSize = DefaultTypeCacheSize
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxValueLen sets the MaxValueLen option.
// A non-positive value resets to the default.
func WithMaxValueLen(n int) Option {
	return func(c *apis.Config) {
		c.MaxValueLen = n
	}
}

// WithMaxContainerLen sets the MaxContainerLen option.
func WithMaxContainerLen(n int) Option {
	return func(c *apis.Config) {
		c.MaxContainerLen = n
	}
}

// WithMaxItems sets the MaxItems option.
func WithMaxItems(n int) Option {
	return func(c *apis.Config) {
		c.MaxItems = n
	}
}

// WithLazyPlaceholder sets the LazyPlaceholder option.
func WithLazyPlaceholder(s string) Option {
	return func(c *apis.Config) {
		c.LazyPlaceholder = s
	}
}

// WithReturnValuesName sets the ReturnValuesName option.
func WithReturnValuesName(s string) Option {
	return func(c *apis.Config) {
		c.ReturnValuesName = s
	}
}

// WithLoadValuesAsync sets the LoadValuesAsync option.
func WithLoadValuesAsync(async bool) Option {
	return func(c *apis.Config) {
		c.LoadValuesAsync = async
	}
}

// WithOutputEncoding sets the OutputEncoding option.
func WithOutputEncoding(name string) Option {
	return func(c *apis.Config) {
		c.OutputEncoding = name
	}
}

// WithTypeCache sets the TypeCache and TypeCacheSize options.
// size is ignored unless p is cache.LRU.
func WithTypeCache(p cache.Policy, size int) Option {
	return func(c *apis.Config) {
		c.TypeCache = p
		if p == cache.LRU {
			c.TypeCacheSize = size
		}
	}
}

// WithPresenters sets the Presenters option.
func WithPresenters(enabled bool) Option {
	return func(c *apis.Config) {
		c.Presenters = enabled
	}
}
