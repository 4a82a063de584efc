// Package commands defines the splitcheck CLI.
//
// Commands
//
//   - profile <file>   Validate a user profile
//   - group <file>     Validate a group and its members
//   - expense <file>   Validate an expense and its splits
//   - rules            List the active rules per record kind
//   - serve            Run the HTTP validation API
//
// Files are JSON or YAML by extension; "-" reads stdin in the format given by
// --format. A rejected record exits with ErrRejected so main can map it to
// status 1, distinct from usage or I/O errors.
//
// Settings come from SPLITKIT_* environment variables (and .env), see Config.
package commands
