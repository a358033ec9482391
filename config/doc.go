// SPDX-License-Identifier: MIT

// Package config loads lvlbits settings from a TOML file and the
// environment and turns them into operator.Option values.
//
// 📄 File format:
//
//	[expansion]
//	slow_threshold = "1s"   # log expansions slower than this (0 disables)
//	budget = "30s"          # fail expansions slower than this (0 = unlimited)
//	self_check = true       # cross-check every expansion against the analytics
//	probe_divisors = 32     # divisors 1..N probed by the self-check
//
//	[log]
//	level = "warn"          # any logrus level name
//
// 🌱 Environment (wins over the file):
//
//	LVLBITS_SLOW_THRESHOLD, LVLBITS_EXPANSION_BUDGET, LVLBITS_SELF_CHECK,
//	LVLBITS_PROBE_DIVISORS, LVLBITS_LOG_LEVEL
//
// Unset keys keep the operator defaults. Unknown keys are rejected.
package config
