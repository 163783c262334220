// Package idgen issues customer-facing tracking numbers.
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// SnowflakeGenerator hands out time-ordered, decimal tracking ids that are
// unique across processes as long as every process uses its own node id.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator creates a generator for node (0-1023).
func NewSnowflakeGenerator(node int64) (*SnowflakeGenerator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", node, err)
	}
	return &SnowflakeGenerator{node: n}, nil
}

func (g *SnowflakeGenerator) Next() string {
	return g.node.Generate().String()
}
