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

// Package frame serializes the bindings of a stack frame, or the children
// of an expanded value, into concatenated wire records.
package frame

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/resolver"
	"dirpx.dev/vrx/typeinfo"
)

var (
	// ErrNilEncoder is returned by New when enc is nil.
	ErrNilEncoder = errors.New("vrx(frame): nil encoder")

	// ErrNotMapping is logged when the return-values binding is not a map.
	ErrNotMapping = errors.New("vrx(frame): return values are not a map")
)

// Serializer is the default apis.Serializer.
type Serializer struct {
	cfg apis.Config
	enc apis.Encoder
	log *slog.Logger
}

// Ensure Serializer implements apis.Serializer.
var _ apis.Serializer = (*Serializer)(nil)

// New builds a Serializer over enc. A nil log uses slog.Default().
func New(cfg apis.Config, enc apis.Encoder, log *slog.Logger) (*Serializer, error) {
	if enc == nil {
		return nil, ErrNilEncoder
	}
	if log == nil {
		log = slog.Default()
	}
	return &Serializer{cfg: cfg, enc: enc, log: log}, nil
}

// Serialize encodes bindings in name order. The return-values binding is
// replaced by one record per returned value. Names set in hidden get the
// hidden flag. A binding that fails is logged and omitted.
func (s *Serializer) Serialize(bindings map[string]any, hidden map[string]bool) string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		v := bindings[name]
		full := s.EvaluateFull(v)
		if name == s.cfg.ReturnValuesName {
			s.returnValues(&b, v, full)
			continue
		}
		var flags apis.Flags
		if hidden[name] {
			flags |= apis.FlagHidden
		}
		s.write(&b, v, name, full, flags)
	}
	return b.String()
}

// SerializeChildren encodes children in the order given, as produced by a
// Resolver when a container is expanded.
func (s *Serializer) SerializeChildren(children apis.Children) string {
	var b strings.Builder
	for _, ch := range children {
		s.write(&b, ch.Value, ch.Name, s.EvaluateFull(ch.Value), 0)
	}
	return b.String()
}

// EvaluateFull reports whether v is evaluated eagerly. In async mode only
// builtin scalars are; everything else gets the lazy placeholder. An
// apis.ErrorOnEval, by value or by pointer, is not builtin and stays lazy.
func (s *Serializer) EvaluateFull(v any) bool {
	if !s.cfg.LoadValuesAsync {
		return true
	}
	info := typeinfo.Of(reflect.TypeOf(resolver.Unwrap(v)))
	return info.Builtin && !info.BuiltinContainer
}

// returnValues writes one record per entry of the return-values map, in
// key order.
func (s *Serializer) returnValues(b *strings.Builder, v any, full bool) {
	rv := resolver.Indirect(v)
	if rv.Kind() != reflect.Map {
		s.log.Warn("vrx: binding skipped",
			slog.String("name", s.cfg.ReturnValuesName), slog.Any("err", ErrNotMapping))
		return
	}

	type entry struct {
		name string
		v    any
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		var val any
		if iter.Value().CanInterface() {
			val = iter.Value().Interface()
		}
		entries = append(entries, entry{name: resolver.Label(iter.Key()), v: val})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	for _, e := range entries {
		s.write(b, e.v, e.name, full, apis.FlagReturnValue)
	}
}

// write encodes one binding. A panic omits the binding.
func (s *Serializer) write(b *strings.Builder, v any, name string, full bool, flags apis.Flags) {
	rec, err := s.record(v, name, full, flags)
	if err != nil {
		s.log.Warn("vrx: binding skipped", slog.String("name", name), slog.Any("err", err))
		return
	}
	b.WriteString(rec)
}

func (s *Serializer) record(v any, name string, full bool, flags apis.Flags) (rec string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	opts := apis.EncodeOptions{Trim: true, EvaluateFull: full, Flags: flags}
	return s.enc.Render(s.enc.Encode(v, name, opts)), nil
}
