// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// When ContextExtractors are registered, New wraps the handler so each record
// gets the attributes they find in its context. That is how the run_id set
// with WithRunID ends up on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "itemdemo"),
//	    logger.WithContextExtractors(logger.RunIDExtractor()),
//	)
//	ctx := logger.WithRunID(context.Background(), uuid.NewString())
//	log.InfoContext(ctx, "item indexed", logger.ItemID("MLA608007087"))
//
// Output goes to stderr by default so it does not mix with console output on stdout.
package logger
