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

import "fmt"

// digestInfoPrefixes holds the DER encoding of the DigestInfo
// structure up to and including the OCTET STRING tag and length, per
// RFC 8017 section 9.2 note 1. Appending the raw digest yields the
// full DigestInfo.
var digestInfoPrefixes = map[string][]byte{
	"SHA256": {0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20},
	"SHA384": {0x30, 0x41, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02, 0x05, 0x00, 0x04, 0x30},
	"SHA512": {0x30, 0x51, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03, 0x05, 0x00, 0x04, 0x40},
}

// emsaPKCS1v15Encode encodes mHash into an encoded message of exactly
// emLen bytes per RFC 8017 section 9.2:
//
//	EM = 0x00 || 0x01 || PS || 0x00 || DigestInfo-prefix || mHash
//
// where PS is at least eight 0xff bytes. The encoding is fully
// deterministic.
func emsaPKCS1v15Encode(mHash []byte, emLen int, hashAlg string) ([]byte, error) {
	prefix, ok := digestInfoPrefixes[hashAlg]
	if !ok {
		return nil, fmt.Errorf("%w: no DigestInfo prefix for %q", ErrUnsupportedAlgorithm, hashAlg)
	}
	tLen := len(prefix) + len(mHash)
	if emLen < tLen+11 {
		return nil, fmt.Errorf("%w: modulus too small for %d-byte DigestInfo", ErrEncoding, tLen)
	}
	em := make([]byte, emLen)
	em[1] = 0x01
	for i := 2; i < emLen-tLen-1; i++ {
		em[i] = 0xff
	}
	copy(em[emLen-tLen:], prefix)
	copy(em[emLen-len(mHash):], mHash)
	return em, nil
}
