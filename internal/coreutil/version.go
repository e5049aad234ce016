// SPDX-License-Identifier: MPL-2.0

package coreutil

// Version is the gocoreutils release version. It is reported by every
// command's --version flag and embedded in the default wget User-Agent.
const Version = "0.1.0"

// LicenseNotice is printed by the per-command --license flag.
const LicenseNotice = `This Source Code Form is subject to the terms of the Mozilla Public
License, v. 2.0. If a copy of the MPL was not distributed with this
file, You can obtain one at https://mozilla.org/MPL/2.0/.
`
