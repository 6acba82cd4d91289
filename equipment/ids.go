package equipment

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// IDGenerator hands out identifiers that are never repeated for the lifetime
// of the generator, deleted entities included.
type IDGenerator interface {
	NextID() string
}

// SequenceGenerator is a monotonic counter. Ids are prefix + decimal counter,
// starting at 1.
type SequenceGenerator struct {
	prefix string
	n      atomic.Uint64
}

// NewSequenceGenerator returns a counter-backed generator.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NextID() string {
	return g.prefix + strconv.FormatUint(g.n.Add(1), 10)
}

// SnowflakeGenerator issues time-ordered 64-bit snowflake ids.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator creates a generator for the given node number (0-1023).
func NewSnowflakeGenerator(node int64) (*SnowflakeGenerator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", node, err)
	}
	return &SnowflakeGenerator{node: n}, nil
}

func (g *SnowflakeGenerator) NextID() string {
	return g.node.Generate().String()
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}

// NewIDGenerator picks a generator by name: "snowflake", "uuid" or "sequence".
// node is only read by snowflake.
func NewIDGenerator(strategy string, node int64) (IDGenerator, error) {
	switch strategy {
	case "snowflake":
		g, err := NewSnowflakeGenerator(node)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "uuid":
		return UUIDGenerator{}, nil
	case "sequence":
		return NewSequenceGenerator("e"), nil
	}
	return nil, fmt.Errorf("unknown id strategy %q", strategy)
}
