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

// Package signature provides raw implementations of the RSASSA
// signature schemes of RFC 8017: RSASSA-PSS (section 8.1) and
// RSASSA-PKCS1-v1_5 (section 8.2).
package signature

import (
	"crypto/rsa"
	"fmt"
	"math/big"
)

const (
	rsaMinModulusSizeInBits  = 2048
	rsaDefaultPublicExponent = 65537
)

// RSAValidModulusSizeInBits validates the size in bits of an RSA
// modulus.
func RSAValidModulusSizeInBits(m int) error {
	if m < rsaMinModulusSizeInBits {
		return fmt.Errorf("modulus size too small, must be >= %d", rsaMinModulusSizeInBits)
	}
	return nil
}

// RSAValidPublicExponent validates a public RSA exponent.
func RSAValidPublicExponent(e int) error {
	// Only the F4 exponent is accepted.
	if e != rsaDefaultPublicExponent {
		return fmt.Errorf("invalid public exponent")
	}
	return nil
}

// HashSafeForSignature checks whether a hash function is safe to use
// with digital signatures that require collision resistance.
func HashSafeForSignature(hashAlg string) error {
	switch hashAlg {
	case "SHA256", "SHA384", "SHA512", "SHA3_256", "SHA3_384", "SHA3_512":
		return nil
	default:
		return fmt.Errorf("%w: %q is not safe for digital signatures", ErrUnsupportedAlgorithm, hashAlg)
	}
}

// ValidateRSAPublicKeyParams validates the public key parameters of an
// RSA key before a primitive is constructed from them.
func ValidateRSAPublicKeyParams(hashAlg string, modSizeBits int, pubExponent []byte) error {
	if err := HashSafeForSignature(hashAlg); err != nil {
		return err
	}
	if err := RSAValidModulusSizeInBits(modSizeBits); err != nil {
		return err
	}
	e := new(big.Int).SetBytes(pubExponent)
	if !e.IsInt64() {
		return fmt.Errorf("public exponent too large")
	}
	return RSAValidPublicExponent(int(e.Int64()))
}

func validRSAPublicKey(publicKey *rsa.PublicKey) error {
	if publicKey == nil || publicKey.N == nil {
		return fmt.Errorf("public key is nil")
	}
	if err := RSAValidModulusSizeInBits(publicKey.N.BitLen()); err != nil {
		return err
	}
	return RSAValidPublicExponent(publicKey.E)
}

func validRSAPrivateKey(privateKey *rsa.PrivateKey) error {
	if privateKey == nil || privateKey.D == nil {
		return fmt.Errorf("private key is nil")
	}
	return validRSAPublicKey(&privateKey.PublicKey)
}

// modulusSizeInBytes is the octet length k of the RSA modulus. It is
// the exact length of every signature under the key.
func modulusSizeInBytes(n *big.Int) int {
	return (n.BitLen() + 7) / 8
}

// bigIntBytesWithFixedSize converts x to a big-endian octet string of
// exactly size bytes, left-padded with zeros. An integer whose natural
// encoding needs more than size bytes is a hard error, never a silent
// truncation.
func bigIntBytesWithFixedSize(x *big.Int, size int) ([]byte, error) {
	if x.BitLen() > 8*size {
		return nil, fmt.Errorf("%w: integer needs %d bytes, want at most %d", ErrEncoding, (x.BitLen()+7)/8, size)
	}
	return x.FillBytes(make([]byte, size)), nil
}

// rsaPublicExp computes m^e mod n.
func rsaPublicExp(publicKey *rsa.PublicKey, m *big.Int) *big.Int {
	e := big.NewInt(int64(publicKey.E))
	return new(big.Int).Exp(m, e, publicKey.N)
}

// rsaPrivateExp computes m^d mod n, using the CRT parameters when the
// key carries precomputed values. Both paths yield the same integer.
func rsaPrivateExp(privateKey *rsa.PrivateKey, m *big.Int) (*big.Int, error) {
	if m.Cmp(privateKey.N) >= 0 {
		return nil, fmt.Errorf("%w: message representative out of range", ErrEncoding)
	}
	pre := &privateKey.Precomputed
	if pre.Dp == nil || pre.Dq == nil || pre.Qinv == nil || len(privateKey.Primes) != 2 {
		return new(big.Int).Exp(m, privateKey.D, privateKey.N), nil
	}
	p, q := privateKey.Primes[0], privateKey.Primes[1]
	m1 := new(big.Int).Exp(m, pre.Dp, p)
	m2 := new(big.Int).Exp(m, pre.Dq, q)
	h := new(big.Int).Sub(m1, m2)
	h.Mul(h, pre.Qinv)
	h.Mod(h, p)
	s := new(big.Int).Mul(h, q)
	return s.Add(s, m2), nil
}
