package graph

import (
	"fmt"
	"strconv"
	"strings"
)

const nodeIDPrefix = "node-"

// NumericSuffix parses the trailing integer of a node id ("node-7" -> 7).
// Returns false for ids without a numeric suffix.
func NumericSuffix(id string) (int, bool) {
	idx := strings.LastIndex(id, "-")
	if idx < 0 || idx == len(id)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(id[idx+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// nodeID formats the canonical id for counter value n.
func nodeID(n int) string {
	return fmt.Sprintf("%s%d", nodeIDPrefix, n)
}

// edgeID builds the deterministic id for a connection. Duplicate connects
// between the same source/target/handle triple therefore produce edges with
// equal ids; the model accepts them as harmless multi-edges.
func edgeID(source, target, handle string) string {
	if handle != "" {
		return fmt.Sprintf("edge-%s-%s-%s", source, target, handle)
	}
	return fmt.Sprintf("edge-%s-%s", source, target)
}

// seedCounter returns the counter value for a document whose NextID was
// never persisted: one past the highest numeric suffix present, so imported
// graphs with gaps do not collide.
func seedCounter(ids []string) int {
	max := 0
	for _, id := range ids {
		if n, ok := NumericSuffix(id); ok && n > max {
			max = n
		}
	}
	return max + 1
}
