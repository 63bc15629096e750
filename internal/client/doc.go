// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line front end of the post-keeper
// API client.
//
// Each subcommand parses its own flags, calls the API through
// [adapter.APIClient] and prints the result as indented JSON.
package client
