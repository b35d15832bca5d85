package metrics

import (
	"sync"
)

// Collector collects decoder metrics.
type Collector struct {
	mu sync.RWMutex

	// Frame synchronization metrics
	syncLocks  uint64
	syncFails  uint64

	// Packet metrics
	packetsDecoded   uint64
	decodeErrors     uint64
	correctedSymbols uint64

	// Voice call metrics
	activeTalkGroups map[uint16]bool
	voiceFrames      uint64

	// Trunking metrics
	tsbkDecoded uint64
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{
		activeTalkGroups: make(map[uint16]bool),
	}
}

// SyncLocked records a frame synchronization lock.
func (c *Collector) SyncLocked() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.syncLocks++
}

// SyncFailed records a frame synchronization failure.
func (c *Collector) SyncFailed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.syncFails++
}

// PacketDecoded records a successfully decoded packet.
func (c *Collector) PacketDecoded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.packetsDecoded++
}

// DecodeError records a decode failure.
func (c *Collector) DecodeError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decodeErrors++
}

// SymbolsCorrected records forward-error-correction activity.
func (c *Collector) SymbolsCorrected(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.correctedSymbols += uint64(n)
}

// VoiceFrameDecoded records a decoded voice frame.
func (c *Collector) VoiceFrameDecoded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.voiceFrames++
}

// TSBKDecoded records a decoded trunking-signalling block.
func (c *Collector) TSBKDecoded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tsbkDecoded++
}

// TalkGroupActive records a talkgroup becoming active.
func (c *Collector) TalkGroupActive(tg uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTalkGroups[tg] = true
}

// TalkGroupInactive records a talkgroup becoming inactive.
func (c *Collector) TalkGroupInactive(tg uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.activeTalkGroups, tg)
}

// Reset resets the transient (non-cumulative) metrics state.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTalkGroups = make(map[uint16]bool)
}

// Getters for metrics

func (c *Collector) GetSyncLocks() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.syncLocks
}

func (c *Collector) GetSyncFails() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.syncFails
}

func (c *Collector) GetPacketsDecoded() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.packetsDecoded
}

func (c *Collector) GetDecodeErrors() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.decodeErrors
}

func (c *Collector) GetCorrectedSymbols() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.correctedSymbols
}

func (c *Collector) GetVoiceFrames() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.voiceFrames
}

func (c *Collector) GetTSBKDecoded() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tsbkDecoded
}

func (c *Collector) GetActiveTalkGroups() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.activeTalkGroups)
}
