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


package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/librarium"
)

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	ctx := context.Background()

	svc, err := librarium.NewService(ctx)
	if err != nil {
		panic(err)
	}
	defer svc.Close()

	query := "necesito un libro de programación en python"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	engine := svc.Engine()
	category, confidence := engine.Classify(ctx, query)
	scenario := engine.DetectScenario(query)

	mode := "rules"
	if engine.VectorMode() {
		mode = "vector"
	}

	fmt.Printf("query:      %s\n", query)
	fmt.Printf("mode:       %s\n", mode)
	if category == "" {
		fmt.Printf("category:   (none) [%0.3f]\n", confidence)
	} else {
		fmt.Printf("category:   %s [%0.3f]\n", category, confidence)
	}
	if scenario != "" {
		fmt.Printf("scenario:   %s\n", scenario)
	}

	if category != "" {
		rec := engine.Recommendations(category, scenario)
		if len(rec.Tips) > 0 {
			fmt.Println("tips:")
			for _, tip := range rec.Tips {
				fmt.Printf("  - %s\n", tip)
			}
		}
		if len(rec.RelatedSubjects) > 0 {
			fmt.Printf("subjects:   %s\n", strings.Join(rec.RelatedSubjects, ", "))
		}
	}
}
