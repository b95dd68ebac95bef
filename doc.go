/*
Package questionnaire is an interactive questionnaire engine for the
terminal. It reads a declarative document (JSON or YAML), asks its questions
one at a time, validates every answer by question kind, and collects the
results of the session.

# Concept

A questionnaire is a flat, ordered list of questions. The engine walks the
list in declaration order; each question is validated against its kind (free
text, yes/no, or multiple choice) and re-asked until the answer is accepted.
Questions may carry a condition gating them on an answer given earlier, so
irrelevant branches are skipped without breaking the order of the rest.

The engine itself is IO-agnostic. It speaks to the outside world through two
small ports: a DocumentLoader that produces the questionnaire definition and
a Console that asks and displays. This keeps the session logic testable and
lets hosts swap the terminal for anything else.

# Key Features

  - Deterministic flow: questions are asked exactly in document order.
  - Per-kind validation with unlimited retries and exact feedback messages.
  - Conditional questions, evaluated against recorded answers only.
  - Hexagonal layout: loaders and consoles are adapters behind ports.

# Usage

Initialize the engine with a document path, then run sessions. You can use
the default file loader or inject a custom one.

	package main

	import (
		"context"
		"fmt"
		"log"

		questionnaire "github.com/Kaybarax/questionnaire-exercise"
	)

	func main() {
		eng, err := questionnaire.New("questionnaire.json")
		if err != nil {
			log.Fatal(err)
		}

		result, err := eng.RunSession(context.Background(), "")
		if err != nil {
			log.Fatal(err)
		}

		for _, pair := range result.Pairs() {
			fmt.Printf("%s -> %s\n", pair.Question, pair.Answer)
		}
	}
*/
package questionnaire
