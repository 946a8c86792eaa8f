package storefront

type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusSubmitting Status = "SUBMITTING"
	StatusSuccess    Status = "SUCCESS"
	StatusFailed     Status = "FAILED"
)

var validNext = map[Status]map[Status]bool{
	StatusIdle:       {StatusSubmitting: true},
	StatusSubmitting: {StatusSuccess: true, StatusFailed: true},
	StatusSuccess:    {StatusIdle: true}, // order more
	StatusFailed:     {StatusIdle: true},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}
