package pipeline

import "fmt"

// State Orchestrator의 실행 단계입니다.
type State int32

const (
	Idle State = iota
	Collecting
	Deduplicating
	Ranking
	Delivering
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Collecting:
		return "collecting"
	case Deduplicating:
		return "deduplicating"
	case Ranking:
		return "ranking"
	case Delivering:
		return "delivering"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}
