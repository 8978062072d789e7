// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package aura

import _ "embed"

// DefaultScript is run when the CLI is given no script.
//
//go:embed default.aura
var DefaultScript string
