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


// Package classify implements hybrid classification of academic queries and
// category-scoped catalog retrieval.
//
// The Engine maps a free-text query to an academic category with a
// confidence score, detects the student scenario behind the query, ranks
// catalog items against a category, and assembles contextual
// recommendations. Two matching strategies exist:
//
//   - VectorStrategy: cosine similarity between embeddings of the query (or
//     item text) and per-category reference vectors computed once at
//     startup
//   - RuleStrategy: case-insensitive substring matching against a
//     priority-ordered keyword rule list
//
// The strategy is selected once, when the engine is built. If the embedding
// backend is missing or fails during initialization the engine runs
// rule-only for the process lifetime; if a single embedding call fails later
// the vector strategy falls back to rules for that call alone. Either way
// every operation returns a degraded result instead of an error: reduced
// precision is acceptable, an unavailable classifier is not.
//
// After construction all engine state is read-only, so every operation is
// safe for concurrent use without caller synchronization. Embedding calls
// run on a bounded worker pool to keep one slow inference from stalling
// unrelated requests.
package classify
