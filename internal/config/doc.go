// Package config loads runtime configuration for the gophnet CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-f string   flat data file (file backend)
//	-b string   storage backend: file | sqlite
//	-d string   sqlite database DSN (sqlite backend)
//	-e          escape line breaks in post contents
//	-self       allow a user to befriend themselves
//	-dup        allow linking an already linked pair again
//	-auth       ask for the password before adding friends or posting
//	-l string   log level: debug | info | warn | error
//	-lf string  log format: text | json
//
// # JSON schema
//
// Keys that are absent leave the previous value untouched:
//
//	{
//	  "data_file": "socialnetwork.txt",
//	  "backend": "file",
//	  "sqlite_dsn": "socialnetwork.db",
//	  "escape_newlines": false,
//	  "allow_self_links": true,
//	  "allow_duplicate_links": true,
//	  "require_auth": false,
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
//
// Environment variables are not read.
package config
