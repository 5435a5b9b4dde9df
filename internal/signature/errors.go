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

package signature

import "errors"

// Error kinds surfaced by the RSASSA primitives. Callers match them
// with errors.Is; raise sites add context with fmt.Errorf and %w.
var (
	// ErrEncoding indicates that a message could not be encoded under
	// the key, e.g. the modulus is too small for the chosen hash and
	// padding. This is a configuration error, not an attack.
	ErrEncoding = errors.New("rsassa: encoding error")

	// ErrUnsupportedAlgorithm indicates an unknown or disallowed hash
	// algorithm name.
	ErrUnsupportedAlgorithm = errors.New("rsassa: unsupported hash algorithm")

	// ErrUnsupportedMode indicates a mode selector outside the known
	// RSASSA schemes.
	ErrUnsupportedMode = errors.New("rsassa: unsupported mode")

	// ErrInvalidSignatureLength indicates a signature whose byte length
	// does not equal the modulus byte length. It is reported before any
	// exponentiation takes place.
	ErrInvalidSignatureLength = errors.New("rsassa: invalid signature length")

	// ErrVerification is the single error returned for every structural
	// or cryptographic mismatch during verification. Which check failed
	// is deliberately not revealed.
	ErrVerification = errors.New("rsassa: verification failed")
)
