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
	"crypto/subtle"
	"fmt"
	"hash"
)

// emsaPSSEncode encodes mHash into an encoded message of
// ceil(emBits/8) bytes per RFC 8017 section 9.1.1. mHash must be the
// digest of the message under h, and salt carries the caller's fresh
// random salt.
func emsaPSSEncode(mHash, salt []byte, emBits int, h hash.Hash) ([]byte, error) {
	hLen := h.Size()
	sLen := len(salt)
	emLen := (emBits + 7) / 8
	if emLen < hLen+sLen+2 {
		return nil, fmt.Errorf("%w: modulus too small for %d-byte digest and %d-byte salt", ErrEncoding, hLen, sLen)
	}

	// M' = eight zero octets || mHash || salt; H = Hash(M').
	var padding [8]byte
	h.Reset()
	h.Write(padding[:])
	h.Write(mHash)
	h.Write(salt)
	hashed := h.Sum(nil)

	// DB = PS || 0x01 || salt, with PS all zero.
	dbLen := emLen - hLen - 1
	db := make([]byte, dbLen)
	db[dbLen-sLen-1] = 0x01
	copy(db[dbLen-sLen:], salt)

	maskedDB := make([]byte, dbLen)
	subtle.XORBytes(maskedDB, db, mgf1(hashed, dbLen, h))
	// Bits above emBits lie outside the modulus and must be zero.
	maskedDB[0] &= 0xff >> (8*emLen - emBits)

	em := make([]byte, emLen)
	copy(em, maskedDB)
	copy(em[dbLen:], hashed)
	em[emLen-1] = 0xbc
	return em, nil
}

// emsaPSSVerify checks that em is a consistent PSS encoding of mHash
// per RFC 8017 section 9.1.2. Every inconsistency, structural or
// cryptographic, is reported as the single ErrVerification; the final
// digest comparison is constant time.
func emsaPSSVerify(mHash, em []byte, emBits, sLen int, h hash.Hash) error {
	hLen := h.Size()
	emLen := (emBits + 7) / 8
	if emLen != len(em) {
		return ErrVerification
	}
	if emLen < hLen+sLen+2 {
		return ErrVerification
	}
	if subtle.ConstantTimeByteEq(em[emLen-1], 0xbc) != 1 {
		return ErrVerification
	}

	dbLen := emLen - hLen - 1
	maskedDB := em[:dbLen]
	hashed := em[dbLen : emLen-1]

	unused := 8*emLen - emBits
	if subtle.ConstantTimeByteEq(maskedDB[0]&^(0xff>>unused), 0) != 1 {
		return ErrVerification
	}

	db := make([]byte, dbLen)
	subtle.XORBytes(db, maskedDB, mgf1(hashed, dbLen, h))
	db[0] &= 0xff >> unused

	psLen := emLen - hLen - sLen - 2
	if subtle.ConstantTimeCompare(db[:psLen], make([]byte, psLen)) != 1 {
		return ErrVerification
	}
	if subtle.ConstantTimeByteEq(db[psLen], 0x01) != 1 {
		return ErrVerification
	}
	salt := db[dbLen-sLen:]

	var padding [8]byte
	h.Reset()
	h.Write(padding[:])
	h.Write(mHash)
	h.Write(salt)
	recomputed := h.Sum(nil)

	if subtle.ConstantTimeCompare(hashed, recomputed) != 1 {
		return ErrVerification
	}
	return nil
}
