package model

// Definitions is the raw content of the directory as produced by a data
// source. It is validated and indexed by the catalog builder; nothing reads
// it directly at request time.
type Definitions struct {
	Locations []Location     `json:"locations" yaml:"locations" toml:"locations"`
	Types     []RetreatType  `json:"types" yaml:"types" toml:"types"`
	Needs     []NeedCategory `json:"needs" yaml:"needs" toml:"needs"`
	Retreats  []Retreat      `json:"retreats" yaml:"retreats" toml:"retreats"`
}

// Clone returns a deep copy of d.
func (d Definitions) Clone() Definitions {
	return Definitions{
		Locations: cloneAll(d.Locations),
		Types:     cloneAll(d.Types),
		Needs:     cloneAll(d.Needs),
		Retreats:  cloneAll(d.Retreats),
	}
}

func cloneAll[T interface{ Clone() T }](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}
