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
	"errors"
	"fmt"
	"strconv"

	"github.com/joeshaw/envdecode"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/cache"
)

// envConfig lists the environment overrides. Values are decoded as text so
// that unset variables can be told apart from zero values.
type envConfig struct {
	MaxValueLen      string `env:"VRX_MAX_VALUE_LEN"`
	MaxContainerLen  string `env:"VRX_MAX_CONTAINER_LEN"`
	MaxItems         string `env:"VRX_MAX_ITEMS"`
	LazyPlaceholder  string `env:"VRX_LAZY_PLACEHOLDER"`
	ReturnValuesName string `env:"VRX_RETURN_VALUES_NAME"`
	LoadValuesAsync  string `env:"VRX_LOAD_VALUES_ASYNC"`
	OutputEncoding   string `env:"VRX_OUTPUT_ENCODING"`
	TypeCache        string `env:"VRX_TYPE_CACHE"`
	TypeCacheSize    string `env:"VRX_TYPE_CACHE_SIZE"`
	Presenters       string `env:"VRX_PRESENTERS"`
}

// FromEnv applies VRX_* environment overrides on top of base.
// Unset variables leave base untouched.
func FromEnv(base apis.Config) (apis.Config, error) {
	var ec envConfig
	if err := envdecode.Decode(&ec); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return base, nil
		}
		return base, fmt.Errorf("vrx(config): decoding environment: %w", err)
	}

	cfg := base
	var err error
	if cfg.MaxValueLen, err = envInt("VRX_MAX_VALUE_LEN", ec.MaxValueLen, cfg.MaxValueLen); err != nil {
		return base, err
	}
	if cfg.MaxContainerLen, err = envInt("VRX_MAX_CONTAINER_LEN", ec.MaxContainerLen, cfg.MaxContainerLen); err != nil {
		return base, err
	}
	if cfg.MaxItems, err = envInt("VRX_MAX_ITEMS", ec.MaxItems, cfg.MaxItems); err != nil {
		return base, err
	}
	if cfg.TypeCacheSize, err = envInt("VRX_TYPE_CACHE_SIZE", ec.TypeCacheSize, cfg.TypeCacheSize); err != nil {
		return base, err
	}
	if cfg.LoadValuesAsync, err = envBool("VRX_LOAD_VALUES_ASYNC", ec.LoadValuesAsync, cfg.LoadValuesAsync); err != nil {
		return base, err
	}
	if cfg.Presenters, err = envBool("VRX_PRESENTERS", ec.Presenters, cfg.Presenters); err != nil {
		return base, err
	}
	if ec.LazyPlaceholder != "" {
		cfg.LazyPlaceholder = ec.LazyPlaceholder
	}
	if ec.ReturnValuesName != "" {
		cfg.ReturnValuesName = ec.ReturnValuesName
	}
	if ec.OutputEncoding != "" {
		cfg.OutputEncoding = ec.OutputEncoding
	}
	if ec.TypeCache != "" {
		p, err := cache.Parse(ec.TypeCache)
		if err != nil {
			return base, fmt.Errorf("vrx(config): VRX_TYPE_CACHE: %w", err)
		}
		cfg.TypeCache = p
	}
	return Sanitize(cfg), nil
}

func envInt(key, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("vrx(config): %s: %w", key, err)
	}
	return n, nil
}

func envBool(key, raw string, def bool) (bool, error) {
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("vrx(config): %s: %w", key, err)
	}
	return b, nil
}
