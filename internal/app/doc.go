// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the single evaluation run, decoupled from
// the process entrypoint so the whole stdout contract can be exercised in
// tests without spawning a subprocess.
package app
