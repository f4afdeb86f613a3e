// Package config loads the optional settings file of the evaluator. The
// settings cover ambient concerns only (logging and pacing); the point being
// evaluated always comes from the command line.
//
// The file is HCL. Expressions are evaluated with the process environment
// available as the `env` object and with a small set of cty standard library
// functions, so a file can adapt to the machine it runs on:
//
//	logging {
//	  level  = lookup(env, "CAMELBACK_DEBUG", "") == "1" ? "debug" : "info"
//	  format = "json"
//	}
//
//	pause_seconds = 1
package config
