// Copyright 2023 The JoseKit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package jose defines the primitive interfaces of the library.
//
// Higher layers (JWS/JWT envelope construction, key loading, CLIs)
// consume signature primitives exclusively through these interfaces.
package jose

// Verifier is the verifying counterpart of [Signer].
//
// Verify returns nil only if signature is a valid signature of data
// under the verifier's key. Structural and cryptographic mismatches
// are deliberately indistinguishable.
type Verifier interface {
	// Verify checks whether signature is a valid signature of data.
	Verify(signature, data []byte) error
}
