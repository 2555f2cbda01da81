package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
	"github.com/Arch2jz/Elden-ring-parody/telemetry"
)

// GetClock returns the singleton clock, or nil when the world has none.
func GetClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}

func emitTelemetry(e *ecs.ECS, ev telemetry.Event) {
	entry, ok := components.Telemetry.First(e.World)
	if !ok {
		return
	}
	sink := components.Telemetry.Get(entry).Sink
	if sink == nil {
		return
	}
	sink.Emit(ev)
}

// UpdateFrameStats reports the frame dt to the telemetry sink.
func UpdateFrameStats(e *ecs.ECS) {
	clock := GetClock(e)
	if clock == nil {
		return
	}
	emitTelemetry(e, telemetry.Event{Kind: "frame", F: clock.DT})
}
