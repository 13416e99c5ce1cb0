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


// Package storage defines the vector cache abstraction and its wire format.
//
// Catalog items are embedded on every match call unless a VectorCache is
// configured. The cache keys an item's embedding by the item id together
// with a content hash of the embedded text, so a cached vector is reused
// only while the item's name and description stay unchanged; an edited item
// naturally misses and gets re-embedded.
//
// The cache is strictly an optimization. A miss, a read error or a failed
// write never surface to callers as anything but a recomputed embedding.
package storage
