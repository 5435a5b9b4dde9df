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
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"hash"
	"io"
	"math/big"

	"github.com/josekit/jose-go/jose"
	"github.com/josekit/jose-go/subtle"
)

// rsaSSAPSSSigner implements RSASSA-PSS signing per RFC 8017 section
// 8.1.1. The salt length always equals the digest length of the
// chosen hash.
type rsaSSAPSSSigner struct {
	privateKey *rsa.PrivateKey
	hashFunc   func() hash.Hash
	hashLen    int
	// saltSource yields the random salt for each signature. It is
	// crypto/rand.Reader in production; tests may substitute a
	// deterministic reader to reproduce encodings.
	saltSource io.Reader
}

var _ jose.Signer = (*rsaSSAPSSSigner)(nil)

// New_RSA_SSA_PSS_Signer creates a [jose.Signer] that signs with
// RSASSA-PSS under privateKey, hashing messages with hashAlg.
func New_RSA_SSA_PSS_Signer(hashAlg string, privateKey *rsa.PrivateKey) (jose.Signer, error) {
	if err := validRSAPrivateKey(privateKey); err != nil {
		return nil, err
	}
	hashFunc, hashLen, err := safeHashForSignature(hashAlg)
	if err != nil {
		return nil, err
	}
	return &rsaSSAPSSSigner{
		privateKey: privateKey,
		hashFunc:   hashFunc,
		hashLen:    hashLen,
		saltSource: rand.Reader,
	}, nil
}

// Sign computes an RSASSA-PSS signature of data. The signature has
// exactly the byte length of the modulus.
func (s *rsaSSAPSSSigner) Sign(data []byte) ([]byte, error) {
	mHash, err := subtle.ComputeHash(s.hashFunc, data)
	if err != nil {
		return nil, err
	}
	salt := make([]byte, s.hashLen)
	if _, err := io.ReadFull(s.saltSource, salt); err != nil {
		return nil, fmt.Errorf("reading salt: %v", err)
	}
	emBits := s.privateKey.N.BitLen() - 1
	em, err := emsaPSSEncode(mHash, salt, emBits, s.hashFunc())
	if err != nil {
		return nil, err
	}
	sig, err := rsaPrivateExp(s.privateKey, new(big.Int).SetBytes(em))
	if err != nil {
		return nil, err
	}
	return bigIntBytesWithFixedSize(sig, modulusSizeInBytes(s.privateKey.N))
}

// rsaSSAPSSVerifier implements RSASSA-PSS verification per RFC 8017
// section 8.1.2, with the salt length pinned to the digest length.
type rsaSSAPSSVerifier struct {
	publicKey *rsa.PublicKey
	hashFunc  func() hash.Hash
	hashLen   int
}

var _ jose.Verifier = (*rsaSSAPSSVerifier)(nil)

// New_RSA_SSA_PSS_Verifier creates a [jose.Verifier] for RSASSA-PSS
// signatures under publicKey.
func New_RSA_SSA_PSS_Verifier(hashAlg string, publicKey *rsa.PublicKey) (jose.Verifier, error) {
	if err := validRSAPublicKey(publicKey); err != nil {
		return nil, err
	}
	hashFunc, hashLen, err := safeHashForSignature(hashAlg)
	if err != nil {
		return nil, err
	}
	return &rsaSSAPSSVerifier{
		publicKey: publicKey,
		hashFunc:  hashFunc,
		hashLen:   hashLen,
	}, nil
}

// Verify checks whether signature is a valid RSASSA-PSS signature of
// data. The signature length is checked against the modulus length
// before any exponentiation.
func (v *rsaSSAPSSVerifier) Verify(signature, data []byte) error {
	k := modulusSizeInBytes(v.publicKey.N)
	if len(signature) != k {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignatureLength, len(signature), k)
	}
	s := new(big.Int).SetBytes(signature)
	if s.Cmp(v.publicKey.N) >= 0 {
		return ErrVerification
	}
	emBits := v.publicKey.N.BitLen() - 1
	emLen := (emBits + 7) / 8
	em, err := bigIntBytesWithFixedSize(rsaPublicExp(v.publicKey, s), emLen)
	if err != nil {
		return ErrVerification
	}
	mHash, err := subtle.ComputeHash(v.hashFunc, data)
	if err != nil {
		return ErrVerification
	}
	return emsaPSSVerify(mHash, em, emBits, v.hashLen, v.hashFunc())
}

// safeHashForSignature resolves a hash name to its constructor and
// digest length, rejecting hashes unfit for signatures.
func safeHashForSignature(hashAlg string) (func() hash.Hash, int, error) {
	if err := HashSafeForSignature(hashAlg); err != nil {
		return nil, 0, err
	}
	hashFunc := subtle.GetHashFunc(hashAlg)
	if hashFunc == nil {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, hashAlg)
	}
	hashLen, err := subtle.GetHashDigestSize(hashAlg)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, err)
	}
	return hashFunc, int(hashLen), nil
}
