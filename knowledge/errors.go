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


package knowledge

import "errors"

// Structural validation errors. Any of these aborts initialization: a base
// that fails validation is a configuration defect, not a runtime condition.
var (
	// ErrEmptyCategoryID indicates a category with a blank identifier.
	ErrEmptyCategoryID = errors.New("category identifier cannot be empty")

	// ErrDuplicateCategory indicates two categories sharing an identifier.
	ErrDuplicateCategory = errors.New("duplicate category identifier")

	// ErrEmptyKeywords indicates a category or scenario with no keywords.
	ErrEmptyKeywords = errors.New("keyword set cannot be empty")

	// ErrEmptyScenarioID indicates a scenario with a blank identifier.
	ErrEmptyScenarioID = errors.New("scenario identifier cannot be empty")

	// ErrDuplicateScenario indicates two scenarios sharing an identifier.
	ErrDuplicateScenario = errors.New("duplicate scenario identifier")

	// ErrUnknownRuleCategory indicates a rule referencing an undefined category.
	ErrUnknownRuleCategory = errors.New("rule references undefined category")

	// ErrUnknownTemplateCategory indicates a template referencing an undefined category.
	ErrUnknownTemplateCategory = errors.New("template references undefined category")

	// ErrUnknownTemplateScenario indicates scenario tips referencing an undefined scenario.
	ErrUnknownTemplateScenario = errors.New("template references undefined scenario")
)
