// Package errors provides coded errors for mercdex.
//
// Every error that leaves a repository, the roster store, a session or an
// orchestrator is an *Error carrying a Code, a caller-facing message and
// optional metadata. The core derivation functions never return errors at all;
// only the boundary (malformed dataset, unknown filter key, unknown mercenary,
// selection outside the configured limits) does.
//
// # Basic Usage
//
//	err := errors.NotFoundf("mercenary %q not found", name)
//	err := errors.OutOfRangef("level %d outside 1..%d", level, maxLevel)
//
// Adding metadata:
//
//	err := errors.InvalidArgument("unknown filter key").
//	    WithMeta("key", key)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.ListMercenaries(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load roster")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("mercenaries[0].name", rec.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Codes
//
//   - InvalidArgument: malformed dataset or caller input
//   - NotFound: unknown mercenary or missing resource
//   - OutOfRange: progression selection outside the configured limits
//   - FailedPrecondition: operation requires state that is not there yet
//   - Unavailable: dataset source cannot be reached
//   - Internal: anything else
package errors
