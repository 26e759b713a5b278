// Package daykeep provides a comprehensive set of functions and types for
// tracking personal daily life. It is designed to be local-first and
// auditable, ensuring users have full control and transparency over their
// data.
//
// The core functionalities include:
//   - Task Management: Recording daily, weekend, and day-of-week tasks
//     with due dates and completion state.
//   - Goal Tracking: Recording goals with a progress percentage and an
//     optional target date.
//   - Calendar: Recording one-off and recurring entries, expanding
//     recurrence rules into the concrete days they occupy, and linking
//     entries to tasks.
//   - Budget: Recording expenses and incomes in exact cents and
//     summarizing them per period.
//   - Crypto Portfolio: Recording holdings in micro-units, fetching live
//     USD prices, and aggregating unrealized profit and loss per asset.
//   - Data Persistence: Handling the encoding and decoding of the tracker
//     to and from human-readable, version-controllable formats (JSONL),
//     with an optional SQLite export.
//
// This package serves as the foundational logic for the `dk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package daykeep
