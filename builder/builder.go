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

package builder

import (
	"log/slog"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/classifier"
	"dirpx.dev/vrx/encoder"
	"dirpx.dev/vrx/frame"
	"dirpx.dev/vrx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildClassifier builds a classifier consulting types before the built-in
// table. When cfg.Presenters is set, values implementing apis.Presenter get
// a presentation provider placed after strs.
func (b *builder) BuildClassifier(cfg apis.Config, types []apis.TypeProvider, strs []apis.StrProvider, log *slog.Logger) apis.Classifier {
	ps := make([]apis.StrProvider, 0, len(strs)+1)
	ps = append(ps, strs...)
	if cfg.Presenters {
		ps = append(ps, strategy.NewPresenterProvider())
	}
	return classifier.New(cfg, types, ps, log)
}

// BuildEncoder builds an encoder over cls. It returns nil if cls is nil.
func (b *builder) BuildEncoder(cfg apis.Config, cls apis.Classifier, log *slog.Logger) apis.Encoder {
	enc, err := encoder.New(cfg, cls, log)
	if err != nil {
		return nil
	}
	return enc
}

// BuildSerializer builds a frame serializer over enc. It returns nil if enc is nil.
func (b *builder) BuildSerializer(cfg apis.Config, enc apis.Encoder, log *slog.Logger) apis.Serializer {
	s, err := frame.New(cfg, enc, log)
	if err != nil {
		return nil
	}
	return s
}
