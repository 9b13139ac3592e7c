// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package fdon implements a streaming, single-pass, zero-copy decoder
// for Fast Data Object Notation (FDON), a JSON-adjacent textual format
// in which every value is prefixed by a one- or two-letter type tag.
//
// Minify strips insignificant whitespace from raw FDON text while
// leaving the bytes inside quoted literals untouched. Parse consumes
// the minified result together with a caller-supplied Arena and
// produces a Value tree: scalar leaves borrow directly from the input
// buffer, and composite nodes (arrays, objects, decoded escape
// strings) live in the arena.
//
// Borrowing
//
// A Value's lifetime is the intersection of its input buffer and its
// Arena. Neither is copied by Parse. Callers must keep both alive for
// as long as any Value derived from them is in use; releasing the
// Arena (via Arena.Reset) invalidates every Value it produced.
//
// Scope
//
// This package covers only the parser and minifier above, plus a
// structural walker for rendering a parsed Value as JSON. It does not
// read files, offer a command-line interface, or serialize to any
// format other than JSON.
//
// Concurrency
//
// Minify and Parse are pure, reentrant functions: they touch no
// package-level state. An Arena is mutated during a single Parse call
// and must not be shared across concurrent parses; distinct parses
// using distinct Arenas may run concurrently without coordination.
package fdon
