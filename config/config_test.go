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

package config_test

import (
	"testing"

	"dirpx.dev/vrx/cache"
	"dirpx.dev/vrx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.MaxValueLen != config.DefaultMaxValueLen {
		t.Fatalf("MaxValueLen = %d, want %d", got.MaxValueLen, config.DefaultMaxValueLen)
	}
	if got.MaxContainerLen != 300 {
		t.Fatalf("MaxContainerLen = %d, want 300", got.MaxContainerLen)
	}
	if got.LazyPlaceholder != "__pydevd_value_async" {
		t.Fatalf("LazyPlaceholder = %q", got.LazyPlaceholder)
	}
	if got.ReturnValuesName != "__pydevd_ret_val_dict" {
		t.Fatalf("ReturnValuesName = %q", got.ReturnValuesName)
	}
	if got.TypeCache != cache.LRU {
		t.Fatalf("TypeCache = %v, want LRU", got.TypeCache)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestOptions(t *testing.T) {
	c := config.NewConfig(
		config.WithMaxValueLen(10),
		config.WithMaxContainerLen(5),
		config.WithMaxItems(7),
		config.WithLazyPlaceholder("lazy"),
		config.WithReturnValuesName("__ret"),
		config.WithLoadValuesAsync(true),
		config.WithOutputEncoding("latin1"),
		config.WithTypeCache(cache.Unbounded, 99),
		config.WithPresenters(false),
	)

	if c.MaxValueLen != 10 || c.MaxContainerLen != 5 || c.MaxItems != 7 {
		t.Fatalf("sizes = %d/%d/%d, want 10/5/7", c.MaxValueLen, c.MaxContainerLen, c.MaxItems)
	}
	if c.LazyPlaceholder != "lazy" || c.ReturnValuesName != "__ret" {
		t.Fatalf("names = %q/%q", c.LazyPlaceholder, c.ReturnValuesName)
	}
	if !c.LoadValuesAsync || c.Presenters {
		t.Fatalf("flags = async:%v presenters:%v", c.LoadValuesAsync, c.Presenters)
	}
	if c.OutputEncoding != "latin1" {
		t.Fatalf("OutputEncoding = %q", c.OutputEncoding)
	}
	// size only applies to LRU
	if c.TypeCache != cache.Unbounded || c.TypeCacheSize != config.DefaultTypeCacheSize {
		t.Fatalf("TypeCache = %v/%d", c.TypeCache, c.TypeCacheSize)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithMaxValueLen(2),
		config.WithMaxValueLen(5),
		config.WithLoadValuesAsync(true),
		config.WithLoadValuesAsync(false),
	)
	if c.MaxValueLen != 5 {
		t.Errorf("MaxValueLen = %d, want 5 (last option wins)", c.MaxValueLen)
	}
	if c.LoadValuesAsync {
		t.Errorf("LoadValuesAsync = true, want false (last option wins)")
	}
}

func TestNewConfig_Guardrails(t *testing.T) {
	c := config.NewConfig(
		config.WithMaxValueLen(-1),
		config.WithMaxContainerLen(0),
		config.WithMaxItems(-5),
		config.WithLazyPlaceholder(""),
		config.WithTypeCache(cache.Policy(42), 0),
	)
	def := config.DefaultConfig()
	if c != def {
		t.Fatalf("NewConfig(invalid) = %+v, want defaults %+v", c, def)
	}
}
