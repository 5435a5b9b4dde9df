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
	"encoding/binary"
	"hash"
)

// mgf1 produces maskLen bytes of mask from seed per RFC 8017
// appendix B.2.1: the concatenation of Hash(seed || counter) for
// counter = 0, 1, ..., truncated to maskLen. The counter is encoded
// as 4 big-endian bytes.
func mgf1(seed []byte, maskLen int, h hash.Hash) []byte {
	mask := make([]byte, 0, maskLen+h.Size())
	var counter [4]byte
	for len(mask) < maskLen {
		h.Reset()
		h.Write(seed)
		h.Write(counter[:])
		mask = h.Sum(mask)
		binary.BigEndian.PutUint32(counter[:], binary.BigEndian.Uint32(counter[:])+1)
	}
	return mask[:maskLen]
}
