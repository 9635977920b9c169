package spirits

import (
	"sync"
	"unicode/utf8"
)

// maxPooledRunes caps the capacity of buffers returned to the pool so one
// very long candidate does not pin a large allocation.
const maxPooledRunes = 4096

// runePool holds decode buffers for candidates. Buffers grow as needed and
// the GC reclaims idle ones through sync.Pool eviction.
var runePool = sync.Pool{
	New: func() any {
		buf := make([]rune, 0, 64)
		return &buf
	},
}

// getRunes decodes s into a pooled buffer. The caller must hand the buffer
// back with putRunes once it is done with it.
func getRunes(s string) *[]rune {
	buf := runePool.Get().(*[]rune)
	runes := (*buf)[:0]
	if n := utf8.RuneCountInString(s); cap(runes) < n {
		runes = make([]rune, 0, n)
	}
	for _, r := range s {
		runes = append(runes, r)
	}
	*buf = runes
	return buf
}

// putRunes returns buf to the pool. Oversized buffers are dropped.
func putRunes(buf *[]rune) {
	if cap(*buf) > maxPooledRunes {
		return
	}
	*buf = (*buf)[:0]
	runePool.Put(buf)
}
