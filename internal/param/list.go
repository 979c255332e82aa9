package param

// Accumulator owns the values collected by container descriptors during one
// parse. The parser creates a fresh one per scan.
type Accumulator struct {
	slots map[string][]string
}

func NewAccumulator() *Accumulator {
	return &Accumulator{slots: make(map[string][]string)}
}

// Append adds v to the slot for name and returns a copy of the slot.
func (a *Accumulator) Append(name, v string) []string {
	a.slots[name] = append(a.slots[name], v)
	return a.Values(name)
}

// Values returns a copy of the slot for name; nil if nothing was appended.
func (a *Accumulator) Values(name string) []string {
	slot, ok := a.slots[name]
	if !ok {
		return nil
	}
	out := make([]string, len(slot))
	copy(out, slot)
	return out
}

// StringList collects every occurrence of its flag, in order.
type StringList struct {
	Base
}

func NewStringList(opts Options) *StringList {
	def, _ := opts.Default.([]string)
	opts.Default = cloneStrings(def)
	return &StringList{Base: newBase(KindList, opts)}
}

func (s *StringList) IsContainer() bool { return true }

// Parse appends raw to acc. A nil acc is treated as a fresh, single-use one.
func (s *StringList) Parse(raw string, acc *Accumulator) (any, error) {
	if acc == nil {
		acc = NewAccumulator()
	}
	return acc.Append(s.name, raw), nil
}

// DefaultValues returns a copy of the default list, never nil.
func (s *StringList) DefaultValues() []string {
	def, _ := s.def.([]string)
	return cloneStrings(def)
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
