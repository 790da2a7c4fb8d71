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

package vrx

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/builder"
	"dirpx.dev/vrx/config"
	"dirpx.dev/vrx/registry"
)

// init initializes the global state.
func init() {
	st.Store(build(config.DefaultConfig(), builder.New(), slog.Default(),
		registry.New[apis.TypeProvider](), registry.New[apis.StrProvider]()))
}

var (
	// ErrNilClassifier is raised when a builder returns a nil classifier.
	ErrNilClassifier = errors.New("vrx: builder returned nil classifier")
	// ErrNilEncoder is raised when a builder returns a nil encoder.
	ErrNilEncoder = errors.New("vrx: builder returned nil encoder")
	// ErrNilSerializer is raised when a builder returns a nil serializer.
	ErrNilSerializer = errors.New("vrx: builder returned nil serializer")

	// ErrNotContainer is returned when expanding a value that has no resolver.
	ErrNotContainer = errors.New("vrx: value is not a container")
	// ErrNoSuchChild is returned when an expansion path names a missing child.
	ErrNoSuchChild = errors.New("vrx: no such child")
)

// state is an immutable snapshot of the global pipeline.
type state struct {
	cfg apis.Config
	bld apis.Builder
	log *slog.Logger

	// types and strs are shared by every snapshot; they only grow.
	types *registry.Registry[apis.TypeProvider]
	strs  *registry.Registry[apis.StrProvider]

	cls apis.Classifier
	enc apis.Encoder
	ser apis.Serializer
}

var (
	// st holds the current snapshot.
	st atomic.Pointer[state]
	// buildMu serializes writers.
	buildMu sync.Mutex
)

// build assembles a snapshot with fresh caches.
func build(cfg apis.Config, bld apis.Builder, log *slog.Logger,
	types *registry.Registry[apis.TypeProvider], strs *registry.Registry[apis.StrProvider]) *state {
	cls := bld.BuildClassifier(cfg, types.Providers(), strs.Providers(), log)
	if cls == nil {
		panic(ErrNilClassifier)
	}
	enc := bld.BuildEncoder(cfg, cls, log)
	if enc == nil {
		panic(ErrNilEncoder)
	}
	ser := bld.BuildSerializer(cfg, enc, log)
	if ser == nil {
		panic(ErrNilSerializer)
	}
	return &state{cfg: cfg, bld: bld, log: log, types: types, strs: strs, cls: cls, enc: enc, ser: ser}
}

// rebuild publishes a new snapshot derived from the current one.
func rebuild(mut func(s *state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	mut(&next)
	st.Store(build(next.cfg, next.bld, next.log, next.types, next.strs))
}

// Encode encodes v under name with default options (trimmed, fully evaluated).
func Encode(v any, name string) apis.EncodedVariable {
	return st.Load().enc.Encode(v, name, apis.DefaultEncodeOptions())
}

// EncodeWith encodes v under name with opts.
func EncodeWith(v any, name string, opts apis.EncodeOptions) apis.EncodedVariable {
	return st.Load().enc.Encode(v, name, opts)
}

// Render returns the wire record of ev.
func Render(ev apis.EncodedVariable) string {
	return st.Load().enc.Render(ev)
}

// Serialize returns the records of a frame's bindings in name order.
func Serialize(bindings map[string]any, hidden map[string]bool) string {
	return st.Load().ser.Serialize(bindings, hidden)
}

// Classify returns the classification of v.
func Classify(v any) apis.Classification {
	return st.Load().cls.Classify(v)
}

// Expand returns the records of the children of v, in resolver order.
func Expand(v any) (string, error) {
	return ExpandPath(v)
}

// ExpandPath follows child labels from v and returns the records of the
// children of the value reached.
func ExpandPath(v any, path ...string) (string, error) {
	s := st.Load()
	cur := v
	for i, label := range path {
		children, err := childrenOf(s, cur)
		if err != nil {
			return "", fmt.Errorf("vrx: expanding %q: %w", path[:i], err)
		}
		next, ok := children.Lookup(label)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrNoSuchChild, path[:i+1])
		}
		cur = next
	}
	children, err := childrenOf(s, cur)
	if err != nil {
		return "", err
	}
	return s.ser.SerializeChildren(children), nil
}

func childrenOf(s *state, v any) (apis.Children, error) {
	cl := s.cls.Classify(v)
	if !cl.IsContainer() {
		return nil, fmt.Errorf("%w: %s", ErrNotContainer, cl.TypeName)
	}
	return cl.Resolver.Children(v)
}

// RegisterTypeProvider appends p to the type providers. Providers are
// consulted in registration order before the built-in table. The pipeline
// is rebuilt with empty caches.
func RegisterTypeProvider(p apis.TypeProvider) error {
	if err := st.Load().types.Register(p); err != nil {
		return err
	}
	rebuild(func(*state) {})
	return nil
}

// RegisterStrProvider appends p to the presentation providers.
func RegisterStrProvider(p apis.StrProvider) error {
	if err := st.Load().strs.Register(p); err != nil {
		return err
	}
	rebuild(func(*state) {})
	return nil
}

// TypeProviders returns the registered type providers in order.
func TypeProviders() []apis.TypeProvider {
	return st.Load().types.Providers()
}

// StrProviders returns the registered presentation providers in order.
func StrProviders() []apis.StrProvider {
	return st.Load().strs.Providers()
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds the pipeline.
func SetConfig(cfg apis.Config) {
	rebuild(func(s *state) { s.cfg = cfg })
}

// Logger returns the global logger.
func Logger() *slog.Logger {
	return st.Load().log
}

// SetLogger sets the logger used by the pipeline. Nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	rebuild(func(s *state) { s.log = l })
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder and rebuilds the pipeline.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	rebuild(func(s *state) { s.bld = b })
}

// SetAll replaces configuration, builder and logger in one step.
// Nil arguments leave the corresponding component unchanged.
func SetAll(cfg *apis.Config, bld apis.Builder, log *slog.Logger) {
	rebuild(func(s *state) {
		if cfg != nil {
			s.cfg = *cfg
		}
		if bld != nil {
			s.bld = bld
		}
		if log != nil {
			s.log = log
		}
	})
}

// Reset restores the default configuration, builder and logger and drops
// every registered provider. It is meant for tests.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(build(config.DefaultConfig(), builder.New(), slog.Default(),
		registry.New[apis.TypeProvider](), registry.New[apis.StrProvider]()))
}
