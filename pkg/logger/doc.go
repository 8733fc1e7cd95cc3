// Package logger provides a leveled logging facade over Go's slog package:
// a functional-options factory, helper attribute constructors, an allow list
// of levels and a few presentation helpers.
//
// New creates a *slog.Logger configured by Option functions. These options
// allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level, or an explicit LevelSet allow list
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from a
//     context value every time Handle is invoked.
//
// # Levels
//
// Besides the slog levels the package defines LevelVerbose, below debug, and
// LevelWTF, above error. Handlers created by New render them as VERBOSE and
// WTF. A LevelSet passed with WithLevels enables exactly the levels it holds:
//
//	levels := logger.NewLevelSet(slog.LevelInfo, slog.LevelError)
//	log := logger.New(logger.WithLevels(levels))
//	levels.Add(slog.LevelDebug) // takes effect immediately
//
// # Helpers
//
// Shout frames a multi-line message in a box, JSON pretty prints a JSON
// document and Exception logs an error. All three log through the supplied
// logger so the level rules above apply to them.
//
// Attribute constructors such as Field, Reason and Valid keep key names
// consistent between packages. Error and Errors return an empty Attr for nil
// errors, so they can be passed without a nil check:
//
//	log.Info("validated", logger.Field("email"), logger.Error(err))
//
// # Configuration
//
// Config maps LOG_LEVEL, LOG_FORMAT, APP_ENV and SERVICE_NAME onto the
// options above; NewFromConfig builds a logger from it.
package logger
