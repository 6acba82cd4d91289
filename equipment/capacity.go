package equipment

// MaxBlockModules is the number of gangs an outlet block can hold.
const MaxBlockModules = 4

// OutletField names one of the three counters of an outlet block.
type OutletField string

const (
	FieldOutlets OutletField = "outlets"
	FieldRJ45    OutletField = "rj45"
	FieldTV      OutletField = "tv"
)

// ApplyUpdate sets field to requested and, when the block would then hold more
// than MaxBlockModules gangs, takes the excess back from that same field only.
// The two other counters are never touched: the user did not edit them.
// Negative requests count as 0. Unknown fields return the block unchanged.
func ApplyUpdate(block OutletBlock, field OutletField, requested int) OutletBlock {
	if requested < 0 {
		requested = 0
	}

	var target *int
	switch field {
	case FieldOutlets:
		target = &block.Outlets
	case FieldRJ45:
		target = &block.RJ45
	case FieldTV:
		target = &block.TV
	default:
		return block
	}

	*target = requested
	if overflow := block.Modules() - MaxBlockModules; overflow > 0 {
		*target = max(*target-overflow, 0)
	}
	return block
}

// ClampBlock floors negative counters at 0 and, when the block holds more than
// MaxBlockModules gangs, drops the excess TV sockets first, then RJ45, then
// standard outlets.
func ClampBlock(block OutletBlock) OutletBlock {
	block.Outlets = max(block.Outlets, 0)
	block.RJ45 = max(block.RJ45, 0)
	block.TV = max(block.TV, 0)

	for _, counter := range []*int{&block.TV, &block.RJ45, &block.Outlets} {
		overflow := block.Modules() - MaxBlockModules
		if overflow <= 0 {
			break
		}
		*counter -= min(*counter, overflow)
	}
	return block
}
