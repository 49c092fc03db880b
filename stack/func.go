package stack

// Func lets a caller opt a value into Callable-context behavior
// explicitly. A plain Go func placed in rendered data is never invoked
// implicitly by this engine, unlike reflection-detected
// func() string / func(string) string lambdas in some Mustache
// implementations; wrapping it in Func is the one supported, explicit
// escape hatch for section-time computation.
type Func func(raw string, frames *Stack) (Value, error)

func (f Func) Kind() Kind                    { return KindCallable }
func (f Func) Truthy() bool                  { return true }
func (f Func) Render() (string, error)       { return "", &stringificationError{kind: KindCallable} }
func (f Func) Child(string) (Value, bool)    { return nil, false }
func (f Func) Iter() ([]Value, bool)         { return nil, false }
func (f Func) CallSection(raw string, frames *Stack) (Value, error) {
	return f(raw, frames)
}

var _ Callable = Func(nil)
