// SPDX-License-Identifier: MIT

// Package store persists sweep results in SQLite.
//
// A run row holds the plane, the quantity, the parameter document (YAML, see
// package config) and summary figures; its samples live in a child table keyed
// by (run_id, idx). Run ids are UUIDv7 strings, so lexical order follows
// creation time.
//
// The database is opened with WAL journaling, a busy timeout and foreign keys
// enabled. The schema is embedded; incremental changes are tracked through
// PRAGMA user_version.
package store
