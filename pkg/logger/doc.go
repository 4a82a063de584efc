// Package logger builds the *slog.Logger used by splitkit services and tools.
//
// New applies functional options (format, level, output, static attributes,
// context extractors) and wraps the chosen slog handler with
// LogHandlerDecorator, which copies request-scoped values such as the request
// id from context.Context into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "splitkit"),
//	    logger.WithContextExtractors(requestid.Extractor),
//	)
//	log.InfoContext(ctx, "expense rejected",
//	    logger.Entity("expense"),
//	    logger.Reasons(verrs.Reasons()...),
//	)
//
// Libraries in this module accept a *slog.Logger and default to Nop, so
// nothing is written unless the caller asks for it.
package logger
