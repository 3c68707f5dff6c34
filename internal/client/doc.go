// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the terminal client: the UI on top of the client
// services until the user quits.
package client
