// Package cli implements the command-line interface for the whispver tool.
//
// # Overview
//
// whispver owns the WhispWaypoints version.properties descriptor. Build
// scripts call it to read the composite build version, bump the plugin
// version and set the Minecraft platform tag, instead of editing the file
// by hand.
//
// # Commands
//
// build-version - Print the composite build version:
//
//	whispver build-version
//	1.21.8_1.3.0
//
// increment-patch, increment-minor, increment-major - Bump the plugin version:
//
//	whispver increment-minor
//	Plugin minor version incremented: 3 -> 4 (patch reset to 0)
//
// All three counters must be integers; otherwise the command fails and the
// descriptor is not written.
//
// set-minecraft - Set the platform tag (stored verbatim):
//
//	whispver set-minecraft 1.21.9
//	whispver set-minecraft --mc-version 1.21.9
//
// show - Print the descriptor with defaults applied:
//
//	whispver show [--output FILE] [--format yaml|json|table]
//
// check - Report problems without changing the descriptor; fails on errors:
//
//	whispver check [--format yaml|json|table] [--output FILE]
//
// manifest - Render plugin.yml with the current build version:
//
//	whispver manifest [--template FILE] [--properties FILE|-] [--name NAME]
//	    [--description TEXT] [--author NAME]... [--depend PLUGIN]... [--output FILE]
//
// serve - Answer read-only queries over HTTP for CI and dashboards:
//
//	whispver serve [--address ADDR] [--port 8080] [--rate-limit 50] [--rate-burst 100]
//	    [--shutdown-timeout 30s]
//
// # Global Flags
//
//	--file, -f     Descriptor path (default: version.properties)
//	--log-level    Log level (debug, info, warn, error)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	WHISPVER_FILE  Descriptor path
//	LOG_LEVEL      Set logging verbosity (debug, info, warn, error)
//	PORT           serve listen port
//
// # Exit Codes
//
//	0  Success
//	1  Any failure (unparsable counter, write failure, failed check)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/cli.version=1.0.0'"
package cli
