// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
// Run binds the listener synchronously, so an unusable address is reported
// as ErrStart before any goroutine is started. It then serves until the
// context is cancelled and drains in-flight requests within the shutdown
// timeout. Signal handling is left to the caller:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness and readiness probes.
package httpserver
