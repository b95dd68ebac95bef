/*
Package domain contains the core domain models for the questionnaire engine.

It defines the fundamental entities of a questionnaire run, such as the
Document, its Questions, and the AnswerSet collected during a session. This
package is kept pure and free of external dependencies like I/O or
presentation, following Hexagonal Architecture principles.

# Key Entities

  - Document: An ordered questionnaire definition (title + questions).
  - Question: A single prompt with a Kind (Text, YesNo, MultipleChoice) and
    an optional display Condition.
  - AnswerSet: The insertion-ordered answers of one session, keyed by question id.
  - Result: The outcome of a completed session, resolvable to question/answer pairs.
*/
package domain
