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


// Package knowledge defines the static academic knowledge base used for
// query classification and catalog retrieval.
//
// A Base holds four kinds of immutable data:
//
//   - Categories: academic subject groupings with their representative
//     keyword phrases, in declaration order
//   - Scenarios: detectable student contexts (starting a program, lab
//     practice, research, ...) with their detection phrases
//   - Rules: a priority-ordered keyword rule list used when vector
//     classification is unavailable; earlier rules win
//   - Templates: per-category and per-(category, scenario) recommendation
//     content (tips, related subjects, typical products)
//
// Order matters throughout. Category declaration order is the tie-break for
// equal similarity scores, and rule order decides which category a query
// resolves to when several rules match. Both orders are part of the base's
// contract and are pinned by tests.
//
// A Base is validated once with Validate and never mutated afterwards, which
// makes it safe to share across concurrent requests without locking.
package knowledge
