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


package classify

import "errors"

var (
	// ErrKnowledgeBaseRequired is returned when an engine is built without a knowledge base.
	ErrKnowledgeBaseRequired = errors.New("knowledge base required")

	// ErrInvalidThreshold is returned for thresholds outside [0, 1].
	ErrInvalidThreshold = errors.New("threshold must be in [0, 1]")

	// ErrVectorCountMismatch indicates the embedder returned the wrong number of vectors.
	ErrVectorCountMismatch = errors.New("embedder returned mismatched vector count")

	// ErrEmptyVector indicates the embedder returned an empty vector.
	ErrEmptyVector = errors.New("embedder returned an empty vector")
)
