package reducer

import "github.com/huangkairan/redux/observability"

const (
	EventCombineCreate  observability.EventType = "combine.create"
	EventCombineReduce  observability.EventType = "combine.reduce"
	EventCombineWarning observability.EventType = "combine.warning"
)

const eventSource = "reducer.Combination"
