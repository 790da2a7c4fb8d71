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

package apis

import "log/slog"

// Builder composes the classification and encoding pipeline from a Config.
// Implementations may ignore the logger, but must not return nil components.
type Builder interface {
	// BuildClassifier constructs a Classifier over the given provider snapshots.
	BuildClassifier(cfg Config, types []TypeProvider, strs []StrProvider, log *slog.Logger) Classifier
	// BuildEncoder constructs an Encoder on top of a Classifier.
	BuildEncoder(cfg Config, cls Classifier, log *slog.Logger) Encoder
	// BuildSerializer constructs a Serializer on top of an Encoder.
	BuildSerializer(cfg Config, enc Encoder, log *slog.Logger) Serializer
}
