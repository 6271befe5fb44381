// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the task API.
//
// Each invocation runs one subcommand against the server through an
// [adapter.ServerAdapter] and prints the result.
package client
