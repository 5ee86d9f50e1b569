// Package contract provides guard clauses for validating arguments at the top
// of a function, and small event payloads built on them.
//
// The checks themselves live in pkg/guard:
//
//	func Rename(id uuid.UUID, title string) error {
//		if _, err := guard.RejectIfEmptyIdentifier(id, "id"); err != nil {
//			return err
//		}
//		title, err := guard.RejectIfBlank(title, "title")
//		if err != nil {
//			return err
//		}
//		...
//	}
//
// Failures are *guard.Error values matched with errors.Is against
// guard.ErrMissingValue, guard.ErrInvalidArgument, guard.ErrInvalidState and
// guard.ErrConfiguration. Their messages come from the per-language tables in
// pkg/messages and are rendered in the process locale.
//
// Supporting packages:
//
//   - pkg/messages – message tables (YAML/JSON), locale matching, locale in context
//   - pkg/config   – environment configuration, including the process locale
//   - pkg/logger   – slog logger factory; guard errors log as structured groups
//
// The event types in this package validate their inputs with the guards:
//
//	ev, err := contract.NewOperationEvent("[started]", payload)
package contract
