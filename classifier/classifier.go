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

// Package classifier selects the Resolver and the presentation provider of
// runtime values and memoizes both decisions per reflect.Type.
package classifier

import (
	"fmt"
	"log/slog"
	"reflect"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/cache"
	"dirpx.dev/vrx/registry"
	"dirpx.dev/vrx/resolver"
	"dirpx.dev/vrx/strategy"
	"dirpx.dev/vrx/typeinfo"
)

// UnknownTypeName is the type name of values whose type cannot be determined.
const UnknownTypeName = "Unable to get Type"

// Classifier is the default apis.Classifier. It owns the resolver cache and
// the presentation cache; both accept benign duplicate computation.
type Classifier struct {
	steps    []apis.Strategy
	fallback apis.Resolver
	strs     []apis.StrProvider
	types    typeinfo.Describer
	log      *slog.Logger

	resolvers  registry.Memo[apis.Resolver]
	presenters registry.Memo[apis.StrProvider]
}

// Ensure Classifier implements apis.Classifier.
var _ apis.Classifier = (*Classifier)(nil)

// New builds a Classifier trying types, then the built-in table, then the
// default resolver. strs are the presentation providers, in priority order.
// A nil log uses slog.Default().
func New(cfg apis.Config, types []apis.TypeProvider, strs []apis.StrProvider, log *slog.Logger) *Classifier {
	if log == nil {
		log = slog.Default()
	}
	d, err := typeinfo.NewDescriber(cfg.TypeCache, cfg.TypeCacheSize)
	if err != nil {
		log.Warn("vrx: type cache disabled", slog.String("policy", cfg.TypeCache.String()), slog.Any("err", err))
		d, _ = typeinfo.NewDescriber(cache.None, 0)
	}

	fallback := resolver.NewDefault()
	ps := make([]apis.StrProvider, 0, len(strs))
	for _, p := range strs {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return &Classifier{
		steps: []apis.Strategy{
			strategy.NewProviderStrategy(types),
			strategy.NewTableStrategy(resolver.NewTable(cfg.MaxItems)),
			strategy.NewDefaultStrategy(fallback),
		},
		fallback: fallback,
		strs:     ps,
		types:    d,
		log:      log,
	}
}

// Classify determines the type identity and Resolver of v. It never panics.
func (c *Classifier) Classify(v any) apis.Classification {
	if rv, ok := v.(reflect.Value); ok {
		if !rv.IsValid() || !rv.CanInterface() {
			return Unknown()
		}
		v = rv.Interface()
	}

	t := reflect.TypeOf(v)
	info := c.types.Describe(t)
	out := apis.Classification{
		Type:             t,
		TypeName:         info.Name,
		Qualifier:        info.Qualifier,
		Short:            info.Short,
		Builtin:          info.Builtin,
		BuiltinContainer: info.BuiltinContainer,
	}
	if t == nil {
		return out
	}
	// A nil pointer has nothing to expand.
	if t.Kind() == reflect.Ptr && reflect.ValueOf(v).IsNil() {
		return out
	}

	if r, _, decided := c.resolvers.Load(t); decided {
		out.Resolver = r
		return out
	}
	out.Resolver = c.resolve(v, t, info.Name)
	return out
}

// Unknown is the classification of a value whose type cannot be determined.
func Unknown() apis.Classification {
	return apis.Classification{TypeName: UnknownTypeName, Short: UnknownTypeName, Unknown: true}
}

// resolve runs the steps in order and caches the first decision. A panicking
// step ends the scan with the fallback resolver, which is not cached.
func (c *Classifier) resolve(v any, t reflect.Type, typeName string) apis.Resolver {
	for _, s := range c.steps {
		r, handled, err := try(s, v, t, typeName)
		if err != nil {
			c.log.Warn("vrx: classification failed, using default resolver",
				slog.String("type", typeName), slog.Any("err", err))
			return c.fallback
		}
		if handled {
			c.resolvers.Store(t, r)
			return r
		}
	}
	// Unreachable with the default step in place.
	c.resolvers.Store(t, c.fallback)
	return c.fallback
}

func try(s apis.Strategy, v any, t reflect.Type, typeName string) (r apis.Resolver, handled bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	r, handled = s.TryClassify(v, t, typeName)
	return r, handled, nil
}

// Present returns the text of the first presentation provider matching the
// type of cl. The provider decision is cached, including "no provider".
// Panics from GetStr propagate to the caller.
func (c *Classifier) Present(v any, cl apis.Classification) (string, bool) {
	if cl.Type == nil || len(c.strs) == 0 {
		return "", false
	}
	p, ok, decided := c.presenters.Load(cl.Type)
	if !decided {
		var err error
		p, ok, err = c.lookupPresenter(cl.Type, cl.TypeName)
		if err != nil {
			c.log.Warn("vrx: presentation provider failed",
				slog.String("type", cl.TypeName), slog.Any("err", err))
			return "", false
		}
		if ok {
			c.presenters.Store(cl.Type, p)
		} else {
			c.presenters.StoreMiss(cl.Type)
		}
	}
	if !ok {
		return "", false
	}
	return p.GetStr(resolver.Unwrap(v)), true
}

func (c *Classifier) lookupPresenter(t reflect.Type, typeName string) (p apis.StrProvider, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	p, ok = registry.First(c.strs, t, typeName)
	return p, ok, nil
}
