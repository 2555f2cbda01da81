package components

import (
	"github.com/yohamta/donburi"

	"github.com/Arch2jz/Elden-ring-parody/telemetry"
)

// TelemetryData holds the singleton combat-stats sink for a world. Nil Sink
// disables reporting, which is what tests use.
type TelemetryData struct {
	Sink *telemetry.Sink
}

var Telemetry = donburi.NewComponentType[TelemetryData]()
