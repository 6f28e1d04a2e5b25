package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/snylonue/multirep/pkg/text"
)

func ExampleSimultaneousReplacer_ReplaceText() {
	// Create a replacer
	replacer := text.NewSimultaneousReplacer()

	// Define some replacement rules
	rules := []text.ReplacementRule{
		{
			FromText: "World",
			ToText:   "Universe",
		},
		{
			FromText: "Hello",
			ToText:   "Hi",
		},
	}

	// Create some content
	content := strings.NewReader("Hello World!")

	// Apply replacements
	result, err := replacer.ReplaceText(context.Background(), content, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Printf("Original: %s\n", result.OriginalContent)
	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Original: Hello World!
	// Modified: Hi Universe!
	// Changes: 2
	// Was Modified: true
}

func ExampleSimultaneousReplacer_ValidateRules() {
	// Create a replacer
	replacer := text.NewSimultaneousReplacer()

	// Define some rules
	rules := []text.ReplacementRule{
		{
			FromText:       "foo",
			ToText:         "bar",
			FileFilterGlob: "*.txt",
		},
		{
			ToText: "qux", // Missing FromText
		},
	}

	// Validate rules
	err := replacer.ValidateRules(rules)
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: rule 1: from_text is required
}
