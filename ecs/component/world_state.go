package component

import "github.com/milk9111/climber/level"

var WorldStateComponent = NewComponent[level.State]()
