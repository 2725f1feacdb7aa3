package domain

// TargetFilter selects which guild members a broadcast is meant for
type TargetFilter string

const (
	TargetAll     TargetFilter = "all"
	TargetOnline  TargetFilter = "online"
	TargetOffline TargetFilter = "offline"
)

// ParseTargetFilter normalizes a filter string; empty means all members
func ParseTargetFilter(s string) (TargetFilter, error) {
	switch TargetFilter(s) {
	case "", TargetAll:
		return TargetAll, nil
	case TargetOnline:
		return TargetOnline, nil
	case TargetOffline:
		return TargetOffline, nil
	}
	return "", ErrInvalidTargetFilter
}
