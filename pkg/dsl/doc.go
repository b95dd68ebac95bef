/*
Package dsl provides a fluent builder for constructing questionnaires in Go code.

It allows developers to define a questionnaire using a type-safe, chained API
instead of relying on external YAML or JSON files. This is particularly useful
for embedding questionnaires in other programs, unit testing, and leveraging
IDE autocompletion/type-checking.

Example usage:

	loader, err := dsl.New("Pet Survey").
		Text("name", "What is your name?").
		YesNo("pets", "Do you have pets?").
		Choice("pet_kind", "What kind of pet?", "Dog", "Cat", "Bird").
		When("pets", "yes", "y").
		Build()
	if err != nil {
		// handle the schema violation
	}

	// The resulting loader satisfies ports.DocumentLoader
	eng, err := questionnaire.New("", questionnaire.WithLoader(loader))
*/
package dsl
