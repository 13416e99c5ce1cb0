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


// Package ai defines the embedding backend abstraction used by the
// classification engine.
//
// The engine depends only on the Embedder interface, so the backend can be
// swapped without touching classification logic. Two implementations ship
// with the module:
//
//   - ai/openai: production embedder for OpenAI-compatible APIs (Ollama,
//     LocalAI, vLLM, OpenAI itself)
//   - ai/mock: deterministic test double, no network required
//
// The embedding backend is an optional capability. Callers probe it once at
// startup; if construction fails the engine runs in rule-only mode for the
// process lifetime.
package ai
