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

// Presenter lets a value describe itself to the debugger front-end.
//
// # Overview
//
// Presenter is the zero-configuration fast path for custom display text.
// When presenters are enabled in Config, a built-in presentation provider
// matches every type implementing Presenter and uses DebugString as the
// authoritative display text, bypassing the default stringification.
//
// Unlike fmt.Stringer, Presenter is consulted only by the debugger, so a
// type can keep a terse String for logs and a richer DebugString for the
// variables view.
//
// # Usage
//
//	type Account struct {
//	    ID      string
//	    Balance int64
//	}
//
//	func (a Account) DebugString() string {
//	    return fmt.Sprintf("account %s (%d cents)", a.ID, a.Balance)
//	}
//
// # Contract
//
//   - DebugString SHOULD be cheap; it runs once per visible variable per pause.
//   - DebugString MUST NOT block or perform I/O.
//   - A panic in DebugString is contained by the encoder and degrades to the
//     debug representation of the value.
type Presenter interface {
	// DebugString returns the display text of the receiver.
	DebugString() string
}

// PresenterFunc adapts a plain function to the Presenter interface.
type PresenterFunc func() string

// DebugString implements Presenter for PresenterFunc.
func (f PresenterFunc) DebugString() string {
	return f()
}
