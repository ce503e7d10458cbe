// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0


// Command dupcheck checks and fixes hand-duplicated numeric code.
//
// Usage:
//
//	dupcheck check [flags] [packages]
//	dupcheck fix [flags] [packages]
//
// Settings are read from .dupcheck.yaml in the working directory when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()

		if !errors.Is(err, errInconsistent) {
			_, _ = fmt.Fprintln(os.Stderr, "dupcheck:", err)
		}

		os.Exit(1)
	}
}
