// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
)

var vectorMUS = ord.NewSliceSer[float32](raw.Float32)

// MarshalEntry serializes a CacheEntry to bytes.
func MarshalEntry(entry *CacheEntry) []byte {
	buf := make([]byte, raw.Uint64.Size(entry.ContentHash)+vectorMUS.Size(entry.Vector))
	n := raw.Uint64.Marshal(entry.ContentHash, buf)
	vectorMUS.Marshal(entry.Vector, buf[n:])
	return buf
}

// UnmarshalEntry deserializes a CacheEntry from bytes.
func UnmarshalEntry(data []byte) (*CacheEntry, error) {
	hash, n, err := raw.Uint64.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	vector, _, err := vectorMUS.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &CacheEntry{ContentHash: hash, Vector: vector}, nil
}
