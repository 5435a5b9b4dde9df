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

// Package rsassa provides RSA signatures using the two standardized
// RSASSA schemes of RFC 8017: RSASSA-PSS (section 8.1) and
// RSASSA-PKCS1-v1_5 (section 8.2).
//
// Keys are plain [crypto/rsa] values owned by the caller; this
// package never parses, generates, or stores keys. Signatures are
// raw octet strings of exactly the modulus byte length — framing
// them into a JWS or any other envelope is the caller's concern.
package rsassa

import (
	"crypto/rsa"
	"fmt"

	internal "github.com/josekit/jose-go/internal/signature"
	"github.com/josekit/jose-go/jose"
)

// Mode selects the RSASSA signature scheme.
type Mode int

const (
	// ModePSS is the probabilistic scheme RSASSA-PSS. Signatures are
	// salted and differ between calls over the same message.
	ModePSS Mode = 1 + iota
	// ModePKCS1v15 is the deterministic scheme RSASSA-PKCS1-v1_5.
	ModePKCS1v15
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModePSS:
		return "PSS"
	case ModePKCS1v15:
		return "PKCS1v15"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Error kinds returned by this package. Match with [errors.Is].
var (
	ErrEncoding               = internal.ErrEncoding
	ErrUnsupportedAlgorithm   = internal.ErrUnsupportedAlgorithm
	ErrUnsupportedMode        = internal.ErrUnsupportedMode
	ErrInvalidSignatureLength = internal.ErrInvalidSignatureLength
	ErrVerification           = internal.ErrVerification
)

// NewSigner creates a [jose.Signer] that signs with the given scheme
// under privateKey, hashing messages with hashAlg ("SHA256",
// "SHA384", "SHA512"; PSS additionally accepts the SHA-3 variants).
func NewSigner(privateKey *rsa.PrivateKey, hashAlg string, mode Mode) (jose.Signer, error) {
	switch mode {
	case ModePSS:
		return internal.New_RSA_SSA_PSS_Signer(hashAlg, privateKey)
	case ModePKCS1v15:
		return internal.New_RSA_SSA_PKCS1_Signer(hashAlg, privateKey)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMode, mode)
	}
}

// NewVerifier creates a [jose.Verifier] for signatures with the given
// scheme under publicKey.
func NewVerifier(publicKey *rsa.PublicKey, hashAlg string, mode Mode) (jose.Verifier, error) {
	switch mode {
	case ModePSS:
		return internal.New_RSA_SSA_PSS_Verifier(hashAlg, publicKey)
	case ModePKCS1v15:
		return internal.New_RSA_SSA_PKCS1_Verifier(hashAlg, publicKey)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMode, mode)
	}
}

// Sign computes a signature of data in one call. The signature has
// exactly the byte length of the key's modulus.
func Sign(privateKey *rsa.PrivateKey, data []byte, hashAlg string, mode Mode) ([]byte, error) {
	signer, err := NewSigner(privateKey, hashAlg, mode)
	if err != nil {
		return nil, err
	}
	return signer.Sign(data)
}

// Verify checks a signature of data in one call. It returns nil on a
// valid signature and [ErrVerification] on any mismatch.
func Verify(publicKey *rsa.PublicKey, signature, data []byte, hashAlg string, mode Mode) error {
	verifier, err := NewVerifier(publicKey, hashAlg, mode)
	if err != nil {
		return err
	}
	return verifier.Verify(signature, data)
}
