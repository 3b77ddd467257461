// Package logger wraps zap with:
//   - a global sugared logger using a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and configuration,
//   - convenience functions (Infof, WarnKV, etc.).
//
// Every step of the setup flow takes a context and logs through it, so
// output stays scoped and structured without threading a logger by hand.
package logger
