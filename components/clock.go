package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the tick source state for the follower.
type ClockData struct {
	Last    time.Time
	Started bool
}

var Clock = donburi.NewComponentType[ClockData]()
