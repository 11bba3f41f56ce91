// Package server owns the listening socket and the fiber application the
// site is served from.
//
// # Lifecycle
//
// A StaticFileServer is driven in three steps:
//
//   - Start binds host:port. A failure is returned as *BindError and is fatal
//     to the caller; there is no retry.
//   - ServeForever blocks serving connections until its context is cancelled.
//   - Stop shuts the fiber app down and closes the listener. ServeForever
//     defers Stop, so the socket is released on every exit path.
//
// A stopped server cannot be started again; build a new one instead.
//
// # Configuration
//
// Config holds the bind address, the root directory (defaulting to the
// directory of the running executable), the Cache-Control value applied to
// served files, the admin API key and the list of critical site files.
//
// # Usage
//
//	app := server.NewApp(log)
//	srv := server.New(cfg.Server, app, log, os.Stdout)
//	if err := srv.Start(); err != nil {
//	    return err
//	}
//	return srv.ServeForever(ctx)
package server
