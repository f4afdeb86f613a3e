// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package paramils renders and reads the single result line that target
// algorithms report to ParamILS-style configurators:
//
//	Result for ParamILS: <status>, <runtime>, <runlength>, <quality>, <seed>, <instance>
//
// The configurator scans the target's stdout for this prefix, so the grammar
// must be reproduced exactly.
package paramils
