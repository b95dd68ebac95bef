/*
Package ports defines the driven ports (interfaces) for the questionnaire engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with different configuration sources and
interaction frontends.

# Key Interfaces

  - DocumentLoader: Responsible for loading the questionnaire Document (e.g., from a file or memory).
  - Console: Responsible for prompting the user and displaying messages.
*/
package ports
