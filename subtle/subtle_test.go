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

package subtle_test

import (
	"crypto/sha256"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/josekit/jose-go/subtle"
)

func TestGetHashDigestSize(t *testing.T) {
	sizes := map[string]uint32{
		"SHA1":     20,
		"SHA224":   28,
		"SHA256":   32,
		"SHA384":   48,
		"SHA512":   64,
		"SHA3_256": 32,
		"SHA3_384": 48,
		"SHA3_512": 64,
	}
	for name, want := range sizes {
		t.Run(name, func(t *testing.T) {
			got, err := subtle.GetHashDigestSize(name)
			if err != nil {
				t.Fatalf("GetHashDigestSize(%q) err = %v, want nil", name, err)
			}
			if got != want {
				t.Errorf("GetHashDigestSize(%q) = %d, want %d", name, got, want)
			}
		})
	}
	if _, err := subtle.GetHashDigestSize("MD5"); err == nil {
		t.Errorf("GetHashDigestSize(MD5) err = nil, want error")
	}
}

func TestGetHashFuncSizeMatchesTable(t *testing.T) {
	for _, name := range []string{"SHA1", "SHA224", "SHA256", "SHA384", "SHA512", "SHA3_256", "SHA3_384", "SHA3_512"} {
		t.Run(name, func(t *testing.T) {
			hashFunc := subtle.GetHashFunc(name)
			if hashFunc == nil {
				t.Fatalf("GetHashFunc(%q) = nil, want non-nil", name)
			}
			size, err := subtle.GetHashDigestSize(name)
			if err != nil {
				t.Fatalf("GetHashDigestSize(%q) err = %v, want nil", name, err)
			}
			if got := hashFunc().Size(); got != int(size) {
				t.Errorf("hash size = %d, table says %d", got, size)
			}
		})
	}
	if subtle.GetHashFunc("MD5") != nil {
		t.Errorf("GetHashFunc(MD5) != nil, want nil")
	}
}

func TestComputeHash(t *testing.T) {
	data := []byte("some data")
	got, err := subtle.ComputeHash(sha256.New, data)
	if err != nil {
		t.Fatalf("ComputeHash() err = %v, want nil", err)
	}
	want := sha256.Sum256(data)
	if diff := cmp.Diff(want[:], got); diff != "" {
		t.Errorf("ComputeHash() diff (-want +got):\n%s", diff)
	}
}

func TestComputeHashNilFuncFails(t *testing.T) {
	if _, err := subtle.ComputeHash(nil, []byte("data")); err == nil {
		t.Errorf("ComputeHash(nil) err = nil, want error")
	}
}

func TestConvertHashName(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"SHA-256", "SHA256"},
		{"sha256", "SHA256"},
		{"SHA-384", "SHA384"},
		{"sha384", "SHA384"},
		{"SHA-512", "SHA512"},
		{"sha512", "SHA512"},
		{"SHA3-256", "SHA3_256"},
		{"sha3-512", "SHA3_512"},
		{"SHA-1", "SHA1"},
		{"whirlpool", ""},
		{"", ""},
	} {
		if got := subtle.ConvertHashName(tc.in); got != tc.want {
			t.Errorf("ConvertHashName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
