package transferpolicy

// ChunkID is an opaque caller-owned chunk identifier. The policy never
// creates or inspects chunk content; it only schedules the IDs it is
// given.
type ChunkID uint32

// LinkStats carries point-in-time link observations for one decision
// round. The policy keeps no history; callers may smooth or filter
// before providing values.
type LinkStats struct {
	// RTTMillis is the round-trip time in milliseconds.
	RTTMillis uint32
	// LossPPM is packet loss in parts-per-million.
	LossPPM uint32
	// InFlightBytes is bytes sent but not yet acknowledged.
	InFlightBytes uint32
}

// DeviceClass is the performance tier of the local device. The caller
// maps whatever runtime signal it has into a class; the policy never
// derives it.
type DeviceClass int

const (
	DeviceUnknown DeviceClass = iota
	DeviceDesktop
	DeviceMobile
	DeviceLowPower
)

// FairnessMode selects the scheduling trade-off.
type FairnessMode int

const (
	// FairnessBalanced balances throughput and latency equally.
	FairnessBalanced FairnessMode = iota
	// FairnessThroughput maximizes throughput: larger windows, less pacing.
	FairnessThroughput
	// FairnessLatency minimizes latency: smaller windows, more pacing.
	FairnessLatency
)

// Constraints bound a single transfer.
type Constraints struct {
	// MaxParallelChunks is the maximum number of chunks in flight.
	MaxParallelChunks uint16
	// MaxInFlightBytes is the maximum total bytes in flight.
	MaxInFlightBytes uint32
	// Priority orders transfers, 0 lowest to 255 highest.
	Priority uint8
	// Fairness selects the scheduling fairness mode.
	Fairness FairnessMode
}

// Backpressure is the policy's send/pause signal to the caller.
type Backpressure int

const (
	// BackpressureNone leaves the current send/pause state unchanged.
	BackpressureNone Backpressure = iota
	// BackpressurePause tells the caller to stop sending.
	BackpressurePause
	// BackpressureResume tells the caller to resume sending.
	BackpressureResume
)

// Input is everything the policy sees in one decision round.
type Input struct {
	// PendingChunkIDs are chunks available to send, not yet in flight.
	PendingChunkIDs []ChunkID
	// Link holds the current link observations.
	Link LinkStats
	// Device is the local device performance tier.
	Device DeviceClass
	// Constraints bound this transfer.
	Constraints Constraints
}

// Decision is the policy output for one round.
type Decision struct {
	// NextChunkIDs are the chunks to send this round, in order.
	NextChunkIDs []ChunkID
	// PacingDelayMillis is the suggested delay before the next round.
	PacingDelayMillis uint32
	// WindowChunks is the suggested send window size in chunks.
	WindowChunks uint16
	// Backpressure is the send/pause signal.
	Backpressure Backpressure
}

// MaxPacingDelayMillis caps PacingDelayMillis for any decision.
const MaxPacingDelayMillis uint32 = 5000
