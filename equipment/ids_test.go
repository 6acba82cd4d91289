package equipment

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceGenerator(t *testing.T) {
	g := NewSequenceGenerator("room-")
	assert.Equal(t, "room-1", g.NextID())
	assert.Equal(t, "room-2", g.NextID())

	bare := NewSequenceGenerator("")
	assert.Equal(t, "1", bare.NextID())
}

func TestSequenceGenerator_Concurrent(t *testing.T) {
	g := NewSequenceGenerator("")
	var (
		mu   sync.Mutex
		seen = map[string]bool{}
		wg   sync.WaitGroup
	)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id := g.NextID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 1600)
	assert.True(t, seen[strconv.Itoa(1600)])
}

func TestSnowflakeGenerator(t *testing.T) {
	g, err := NewSnowflakeGenerator(1)
	require.NoError(t, err)
	a, b := g.NextID(), g.NextID()
	assert.NotEqual(t, a, b)

	_, err = NewSnowflakeGenerator(5000)
	assert.Error(t, err)
}

func TestUUIDGenerator(t *testing.T) {
	var g IDGenerator = UUIDGenerator{}
	assert.Len(t, g.NextID(), 36)
	assert.NotEqual(t, g.NextID(), g.NextID())
}

func TestIDGenerators_Unique(t *testing.T) {
	for _, strategy := range []string{"snowflake", "uuid", "sequence"} {
		t.Run(strategy, func(t *testing.T) {
			g, err := NewIDGenerator(strategy, 7)
			require.NoError(t, err)

			const workers, perWorker = 8, 200
			var mu sync.Mutex
			seen := make(map[string]bool, workers*perWorker)
			var wg sync.WaitGroup
			for range workers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range perWorker {
						id := g.NextID()
						mu.Lock()
						seen[id] = true
						mu.Unlock()
					}
				}()
			}
			wg.Wait()
			assert.Len(t, seen, workers*perWorker)
		})
	}
}

func TestNewIDGenerator_Errors(t *testing.T) {
	_, err := NewIDGenerator("random", 0)
	assert.ErrorContains(t, err, "unknown id strategy")

	_, err = NewIDGenerator("snowflake", 5000)
	assert.Error(t, err)
}
