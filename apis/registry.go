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

// Registry is an ordered, append-only collection of providers of one
// capability. Providers are consulted in registration order.
type Registry[P Capability] interface {
	// Register appends p. Registration is expected to happen once at startup.
	Register(p P) error
	// Providers returns a snapshot of the registered providers in order.
	Providers() []P
	// Count returns the number of registered providers.
	Count() int
}
