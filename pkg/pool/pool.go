// Word map pool for the G-code tokenizer
//
// Every line of a print file is tokenized into a letter -> value map that
// lives only until the tracker has applied it, so the maps are recycled.
//
// Copyright (C) 2026 Go Migration Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package pool

import (
	"sync"
)

// maxPooledWords bounds the maps kept for reuse. A line with more words
// than this is unusual and its map is left to the GC.
const maxPooledWords = 32

var argsMapPool = sync.Pool{
	New: func() any {
		return make(map[string]string, 8)
	},
}

// GetArgsMap gets an empty string map from the pool.
func GetArgsMap() map[string]string {
	return argsMapPool.Get().(map[string]string)
}

// PutArgsMap clears m and returns it to the pool.
func PutArgsMap(m map[string]string) {
	if m == nil || len(m) > maxPooledWords {
		return
	}
	clear(m)
	argsMapPool.Put(m)
}
