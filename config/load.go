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
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/cache"
)

// Format names a configuration file syntax.
type Format string

const (
	// FormatTOML is the TOML syntax.
	FormatTOML Format = "toml"
	// FormatYAML is the YAML syntax.
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for files whose extension maps to no Format.
var ErrUnsupportedFormat = errors.New("vrx(config): unsupported config file format")

// ParseError describes a configuration document that could not be decoded.
type ParseError struct {
	// Source is the file path or "<reader>".
	Source string
	// Err is the underlying decoder error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vrx(config): parsing %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// fileConfig mirrors apis.Config with optional fields so that keys absent
// from a document keep the value of the base configuration.
type fileConfig struct {
	MaxValueLen      *int    `toml:"max_value_len" yaml:"max_value_len"`
	MaxContainerLen  *int    `toml:"max_container_len" yaml:"max_container_len"`
	MaxItems         *int    `toml:"max_items" yaml:"max_items"`
	LazyPlaceholder  *string `toml:"lazy_placeholder" yaml:"lazy_placeholder"`
	ReturnValuesName *string `toml:"return_values_name" yaml:"return_values_name"`
	LoadValuesAsync  *bool   `toml:"load_values_async" yaml:"load_values_async"`
	OutputEncoding   *string `toml:"output_encoding" yaml:"output_encoding"`
	TypeCache        *string `toml:"type_cache" yaml:"type_cache"`
	TypeCacheSize    *int    `toml:"type_cache_size" yaml:"type_cache_size"`
	Presenters       *bool   `toml:"presenters" yaml:"presenters"`
}

// FormatOf returns the Format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load reads the configuration file at path on top of DefaultConfig.
func Load(path string) (apis.Config, error) {
	return LoadInto(DefaultConfig(), path)
}

// LoadInto reads the configuration file at path on top of base.
func LoadInto(base apis.Config, path string) (apis.Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return base, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("vrx(config): reading %s: %w", path, err)
	}
	cfg, err := decode(base, format, path, data)
	if err != nil {
		return base, err
	}
	return cfg, nil
}

// Decode parses data in the given format on top of base.
func Decode(base apis.Config, format Format, data []byte) (apis.Config, error) {
	return decode(base, format, "<reader>", data)
}

func decode(base apis.Config, format Format, source string, data []byte) (apis.Config, error) {
	var fc fileConfig
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fc); err != nil {
			return base, &ParseError{Source: source, Err: err}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; it simply overrides nothing.
		if err := dec.Decode(&fc); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return base, &ParseError{Source: source, Err: err}
		}
	default:
		return base, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return fc.apply(base, source)
}

func (fc fileConfig) apply(cfg apis.Config, source string) (apis.Config, error) {
	setInt(&cfg.MaxValueLen, fc.MaxValueLen)
	setInt(&cfg.MaxContainerLen, fc.MaxContainerLen)
	setInt(&cfg.MaxItems, fc.MaxItems)
	setString(&cfg.LazyPlaceholder, fc.LazyPlaceholder)
	setString(&cfg.ReturnValuesName, fc.ReturnValuesName)
	setBool(&cfg.LoadValuesAsync, fc.LoadValuesAsync)
	setString(&cfg.OutputEncoding, fc.OutputEncoding)
	setInt(&cfg.TypeCacheSize, fc.TypeCacheSize)
	setBool(&cfg.Presenters, fc.Presenters)
	if fc.TypeCache != nil {
		p, err := cache.Parse(*fc.TypeCache)
		if err != nil {
			return cfg, &ParseError{Source: source, Err: err}
		}
		cfg.TypeCache = p
	}
	return Sanitize(cfg), nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
