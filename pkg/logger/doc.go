// Package logger builds *slog.Logger values with functional options and keeps
// attribute naming consistent across the module.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler so that ContextExtractor callbacks can add attributes taken from the
// context of each record. WithLocale registers the extractor for the locale
// stored by messages.SetLocale.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithLocale(),
//	)
//
//	if _, err := guard.RejectIfNull(user, "user"); err != nil {
//	    log.WarnContext(ctx, "rejected request", logger.Violation(err))
//	}
//
// Error, Errors and Violation return an empty attribute for nil errors, so they
// can be passed without a nil check.
package logger
