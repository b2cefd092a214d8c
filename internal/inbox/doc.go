// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package inbox turns audio files dropped into a directory into notes.
//
// The directory tree is watched with fsnotify. A file whose path relative
// to the inbox matches one of the doublestar patterns is picked up once it
// has been quiet for the debounce period, transcribed on the server and
// saved as a note titled after the file. Content already handled by this
// process is recognised by its xxhash digest and skipped.
//
// Files present when the watcher starts are treated as handled.
package inbox
