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

import (
	"crypto/rsa"
	csubtle "crypto/subtle"
	"fmt"
	"hash"
	"math/big"

	"github.com/josekit/jose-go/jose"
	"github.com/josekit/jose-go/subtle"
)

// rsaSSAPKCS1Signer implements RSASSA-PKCS1-v1_5 signing per RFC 8017
// section 8.2.1. The scheme is deterministic: the same key, hash and
// message always produce the same signature.
type rsaSSAPKCS1Signer struct {
	privateKey *rsa.PrivateKey
	hashFunc   func() hash.Hash
	hashAlg    string
}

var _ jose.Signer = (*rsaSSAPKCS1Signer)(nil)

// New_RSA_SSA_PKCS1_Signer creates a [jose.Signer] that signs with
// RSASSA-PKCS1-v1_5 under privateKey, hashing messages with hashAlg.
// Only hashes with a DigestInfo prefix (SHA256, SHA384, SHA512) are
// accepted.
func New_RSA_SSA_PKCS1_Signer(hashAlg string, privateKey *rsa.PrivateKey) (jose.Signer, error) {
	if err := validRSAPrivateKey(privateKey); err != nil {
		return nil, err
	}
	hashFunc, err := pkcs1HashFunc(hashAlg)
	if err != nil {
		return nil, err
	}
	return &rsaSSAPKCS1Signer{
		privateKey: privateKey,
		hashFunc:   hashFunc,
		hashAlg:    hashAlg,
	}, nil
}

// Sign computes an RSASSA-PKCS1-v1_5 signature of data. The signature
// has exactly the byte length of the modulus.
func (s *rsaSSAPKCS1Signer) Sign(data []byte) ([]byte, error) {
	mHash, err := subtle.ComputeHash(s.hashFunc, data)
	if err != nil {
		return nil, err
	}
	k := modulusSizeInBytes(s.privateKey.N)
	em, err := emsaPKCS1v15Encode(mHash, k, s.hashAlg)
	if err != nil {
		return nil, err
	}
	sig, err := rsaPrivateExp(s.privateKey, new(big.Int).SetBytes(em))
	if err != nil {
		return nil, err
	}
	return bigIntBytesWithFixedSize(sig, k)
}

// rsaSSAPKCS1Verifier implements RSASSA-PKCS1-v1_5 verification per
// RFC 8017 section 8.2.2, by recomputing the expected encoded message
// and comparing in constant time.
type rsaSSAPKCS1Verifier struct {
	publicKey *rsa.PublicKey
	hashFunc  func() hash.Hash
	hashAlg   string
}

var _ jose.Verifier = (*rsaSSAPKCS1Verifier)(nil)

// New_RSA_SSA_PKCS1_Verifier creates a [jose.Verifier] for
// RSASSA-PKCS1-v1_5 signatures under publicKey.
func New_RSA_SSA_PKCS1_Verifier(hashAlg string, publicKey *rsa.PublicKey) (jose.Verifier, error) {
	if err := validRSAPublicKey(publicKey); err != nil {
		return nil, err
	}
	hashFunc, err := pkcs1HashFunc(hashAlg)
	if err != nil {
		return nil, err
	}
	return &rsaSSAPKCS1Verifier{
		publicKey: publicKey,
		hashFunc:  hashFunc,
		hashAlg:   hashAlg,
	}, nil
}

// Verify checks whether signature is a valid RSASSA-PKCS1-v1_5
// signature of data. The signature length is checked against the
// modulus length before any exponentiation.
func (v *rsaSSAPKCS1Verifier) Verify(signature, data []byte) error {
	k := modulusSizeInBytes(v.publicKey.N)
	if len(signature) != k {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignatureLength, len(signature), k)
	}
	s := new(big.Int).SetBytes(signature)
	if s.Cmp(v.publicKey.N) >= 0 {
		return ErrVerification
	}
	em, err := bigIntBytesWithFixedSize(rsaPublicExp(v.publicKey, s), k)
	if err != nil {
		return ErrVerification
	}
	mHash, err := subtle.ComputeHash(v.hashFunc, data)
	if err != nil {
		return ErrVerification
	}
	expected, err := emsaPKCS1v15Encode(mHash, k, v.hashAlg)
	if err != nil {
		return ErrVerification
	}
	if csubtle.ConstantTimeCompare(em, expected) != 1 {
		return ErrVerification
	}
	return nil
}

// pkcs1HashFunc resolves a hash name for PKCS1-v1_5 use. The name
// must be safe for signatures and have a DigestInfo prefix.
func pkcs1HashFunc(hashAlg string) (func() hash.Hash, error) {
	if err := HashSafeForSignature(hashAlg); err != nil {
		return nil, err
	}
	if _, ok := digestInfoPrefixes[hashAlg]; !ok {
		return nil, fmt.Errorf("%w: no DigestInfo prefix for %q", ErrUnsupportedAlgorithm, hashAlg)
	}
	hashFunc := subtle.GetHashFunc(hashAlg)
	if hashFunc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, hashAlg)
	}
	return hashFunc, nil
}
