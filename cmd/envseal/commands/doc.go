// Package commands defines the envseal CLI and wires dependencies for subcommands.
//
// Commands
//
//   - exchange     Negotiate a session with the key-exchange endpoint
//   - fingerprint  Print the backend public key fingerprint
//   - seal         Encrypt a JSON payload into an envelope
//
// # Implementation
//
// The root command builds the dependency graph (cipher suite, exchange
// client, channel service) before any subcommand runs, so handlers share
// one app context. The session cache lives for the process, which for a
// CLI means one negotiation per invocation; the commands exist for
// smoke-testing deployments and scripting, the library is the product.
package commands
