package network

import (
	"github.com/automoto/vantage-mp/shared/messages"
	"github.com/go-gl/mathgl/mgl32"
)

const predictionBufferSize = 64

// IntentRecord stores an intent alongside the predicted position after
// applying it locally.
type IntentRecord struct {
	Intent    messages.MoveIntent
	Predicted mgl32.Vec3
}

// PredictionBuffer is a ring buffer of recent intents and their predicted
// outcomes, for reconciling against authoritative snapshots.
type PredictionBuffer struct {
	history [predictionBufferSize]IntentRecord
	nextSeq uint32
}

// Store saves an intent and the resulting predicted position.
func (pb *PredictionBuffer) Store(intent messages.MoveIntent, predicted mgl32.Vec3) {
	idx := intent.Sequence % predictionBufferSize
	pb.history[idx] = IntentRecord{
		Intent:    intent,
		Predicted: predicted,
	}
	pb.nextSeq = intent.Sequence + 1
}

// Get retrieves a stored record by sequence number. Returns false if not
// found or if the slot has been overwritten.
func (pb *PredictionBuffer) Get(seq uint32) (IntentRecord, bool) {
	idx := seq % predictionBufferSize
	record := pb.history[idx]
	if record.Intent.Sequence != seq {
		return IntentRecord{}, false
	}
	return record, true
}

// NextSeq returns the next expected sequence number.
func (pb *PredictionBuffer) NextSeq() uint32 {
	return pb.nextSeq
}

// GetUnacknowledged returns all stored intents with sequence numbers greater
// than lastAcked and less than nextSeq, the ones the authority has not
// confirmed yet.
func (pb *PredictionBuffer) GetUnacknowledged(lastAcked uint32) []IntentRecord {
	var results []IntentRecord
	for seq := lastAcked + 1; seq < pb.nextSeq; seq++ {
		if record, ok := pb.Get(seq); ok {
			results = append(results, record)
		}
	}
	return results
}

// PredictionError returns the distance between predicted and authoritative
// position for a given sequence, or 0 when the record is gone.
func (pb *PredictionBuffer) PredictionError(seq uint32, server mgl32.Vec3) float32 {
	record, ok := pb.Get(seq)
	if !ok {
		return 0
	}
	return record.Predicted.Sub(server).Len()
}
