package main

import (
	"fmt"
	"sync"
	"unsafe"

	log "github.com/sirupsen/logrus"
)

// live tracks digit blocks that were handed out and not yet released,
// keyed by their address, with their length as the value.
var live = struct {
	sync.Mutex
	blocks map[unsafe.Pointer]int
}{
	blocks: make(map[unsafe.Pointer]int),
}

// acquire records a block of n bytes at p.
func acquire(p unsafe.Pointer, n int) {
	live.Lock()
	live.blocks[p] = n
	live.Unlock()
}

// forget removes the block at p and reports whether it may be freed.
// It returns false for addresses that are not live, which happens on a
// second release of the same buffer or on a buffer from another allocator.
func forget(p unsafe.Pointer, n int) bool {
	live.Lock()
	want, ok := live.blocks[p]
	if ok {
		delete(live.blocks, p)
	}
	live.Unlock()

	logger := log.WithField("data", fmt.Sprintf("%p", p)).WithField("len", n)
	if !ok {
		logger.Error("dragon4_free: buffer is not live, it was released already or not allocated by dragon4")
		return false
	}
	if want != n {
		logger.WithField("allocated", want).Warn("dragon4_free: buffer length was modified by the caller")
	}
	logger.Debug("dragon4_free: released")
	return true
}

// outstanding returns the number of live blocks.
func outstanding() int {
	live.Lock()
	defer live.Unlock()
	return len(live.blocks)
}
