package param

// ContextParam marks a handler that wants the invocation context. It is never
// read from argv.
type ContextParam struct {
	Base
}

func NewContextParam() *ContextParam {
	return &ContextParam{Base: newBase(KindContext, Options{})}
}

// Parse returns the wired context regardless of raw.
func (c *ContextParam) Parse(_ string, _ *Accumulator) (any, error) {
	return c.def, nil
}

// Version is the `--version` switch. Its default is false so that it always
// registers as a flag.
type Version struct {
	Base
}

func NewVersion(opts Options) *Version {
	if opts.Default == nil {
		opts.Default = false
	}
	if opts.Help == "" {
		opts.Help = "Show version and exit."
	}
	return &Version{Base: newBase(KindVersion, opts)}
}

func (v *Version) Parse(_ string, _ *Accumulator) (any, error) {
	return true, nil
}
