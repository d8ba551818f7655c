package transferpolicy

// Decide computes a scheduling decision from the given input.
//
// Contract:
//
//   - Deterministic: identical input produces identical output,
//     including NextChunkIDs ordering.
//   - len(NextChunkIDs) <= Constraints.MaxParallelChunks.
//   - WindowChunks <= Constraints.MaxParallelChunks.
//   - PacingDelayMillis <= MaxPacingDelayMillis.
//   - If Link.InFlightBytes > Constraints.MaxInFlightBytes the
//     decision is BackpressurePause with nothing scheduled.
func Decide(in Input) Decision {
	if in.Link.InFlightBytes > in.Constraints.MaxInFlightBytes {
		return Decision{Backpressure: BackpressurePause}
	}

	window := windowFor(in)
	if int(window) > len(in.PendingChunkIDs) {
		window = uint16(len(in.PendingChunkIDs))
	}

	next := make([]ChunkID, window)
	copy(next, in.PendingChunkIDs[:window])

	return Decision{
		NextChunkIDs:      next,
		PacingDelayMillis: pacingFor(in),
		WindowChunks:      window,
		Backpressure:      BackpressureNone,
	}
}

// windowFor sizes the send window from device tier, fairness mode and
// observed loss, bounded by MaxParallelChunks.
func windowFor(in Input) uint16 {
	window := in.Constraints.MaxParallelChunks

	switch in.Device {
	case DeviceMobile:
		window = halve(window)
	case DeviceLowPower:
		window = halve(halve(window))
	}

	if in.Constraints.Fairness == FairnessLatency {
		window = halve(window)
	}

	// Over 5% observed loss: shrink the window instead of pushing more.
	if in.Link.LossPPM > 50_000 {
		window = halve(window)
	}
	return window
}

// pacingFor derives the inter-round delay. Throughput mode never paces;
// latency mode paces by a quarter RTT; balanced paces only on loss.
func pacingFor(in Input) uint32 {
	var delay uint32
	switch in.Constraints.Fairness {
	case FairnessThroughput:
		delay = 0
	case FairnessLatency:
		delay = in.Link.RTTMillis / 4
	default:
		if in.Link.LossPPM > 50_000 {
			delay = in.Link.RTTMillis / 2
		}
	}
	if delay > MaxPacingDelayMillis {
		delay = MaxPacingDelayMillis
	}
	return delay
}

// halve shrinks a window without collapsing it to zero.
func halve(w uint16) uint16 {
	if w <= 1 {
		return w
	}
	return w / 2
}
