package events

import (
	"strconv"

	"github.com/google/uuid"
)

func formatAmount(amount uint64) string {
	return strconv.FormatUint(amount, 10)
}

func intToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

// newCorrelationID mints an audit correlation ID for an emitted event,
// letting an off-chain indexer stitch a DepositEvent to the ClaimEvent(s) it
// eventually produces.
func newCorrelationID() string {
	return uuid.NewString()
}
