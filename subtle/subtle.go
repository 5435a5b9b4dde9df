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

// Package subtle provides common methods needed by the primitive
// implementations.
package subtle

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"
)

var hashDigestSizes = map[string]uint32{
	"SHA1":     20,
	"SHA224":   28,
	"SHA256":   32,
	"SHA384":   48,
	"SHA512":   64,
	"SHA3_256": 32,
	"SHA3_384": 48,
	"SHA3_512": 64,
}

// GetHashDigestSize returns the digest size of the given hash in bytes.
func GetHashDigestSize(hash string) (uint32, error) {
	size, ok := hashDigestSizes[hash]
	if !ok {
		return 0, fmt.Errorf("invalid hash algorithm: %q", hash)
	}
	return size, nil
}

// GetHashFunc returns the constructor for the given hash, or nil if
// the hash is not supported.
func GetHashFunc(hash string) func() hash.Hash {
	switch hash {
	case "SHA1":
		return sha1.New
	case "SHA224":
		return sha256.New224
	case "SHA256":
		return sha256.New
	case "SHA384":
		return sha512.New384
	case "SHA512":
		return sha512.New
	case "SHA3_256":
		return sha3.New256
	case "SHA3_384":
		return sha3.New384
	case "SHA3_512":
		return sha3.New512
	default:
		return nil
	}
}

// ComputeHash calculates a hash of the given data using the given
// hash function.
func ComputeHash(hashFunc func() hash.Hash, data []byte) ([]byte, error) {
	if hashFunc == nil {
		return nil, fmt.Errorf("invalid hash function")
	}
	h := hashFunc()
	h.Write(data)
	return h.Sum(nil), nil
}

// ConvertHashName normalizes hash names as they appear in other
// encodings (JOSE lowercase names, NIST dashed names) to the names
// used by this library. It returns an empty string for unknown names.
func ConvertHashName(name string) string {
	switch name {
	case "SHA-1", "sha1":
		return "SHA1"
	case "SHA-224", "sha224":
		return "SHA224"
	case "SHA-256", "sha256":
		return "SHA256"
	case "SHA-384", "sha384":
		return "SHA384"
	case "SHA-512", "sha512":
		return "SHA512"
	case "SHA3-256", "sha3-256":
		return "SHA3_256"
	case "SHA3-384", "sha3-384":
		return "SHA3_384"
	case "SHA3-512", "sha3-512":
		return "SHA3_512"
	default:
		return ""
	}
}
