package symcanon

import (
	"fmt"
	"sort"

	"github.com/njchilds90/symcanon/internal/errwrap"
)

// Function describes a named single-argument function such as exp or ln. Two
// descriptors are equal when their names are equal.
type Function struct {
	name string
}

// Name returns the name the function was registered with.
func (obj *Function) Name() string { return obj.name }

// String returns the name of the function.
func (obj *Function) String() string { return obj.name }

// Equal compares two descriptors by name.
func (obj *Function) Equal(other *Function) bool {
	if obj == nil || other == nil {
		return obj == other
	}
	return obj.name == other.name
}

// registeredFunctions is a global map of all known function descriptors. You
// should never touch this map directly. Use methods like RegisterFunction
// instead.
var registeredFunctions = make(map[string]*Function) // must initialize

// RegisterFunction adds a new function descriptor and returns it. It is meant
// to be called from a package level var or from init, since the table is read
// without locking afterwards. There is no matching Unregister function.
func RegisterFunction(name string) *Function {
	if name == "" {
		panic("symcanon: function name is empty")
	}
	if _, exists := registeredFunctions[name]; exists {
		panic(fmt.Sprintf("symcanon: a function named %s is already registered", name))
	}
	f := &Function{name: name}
	registeredFunctions[name] = f
	return f
}

// LookupFunction returns the descriptor registered under name.
func LookupFunction(name string) (*Function, error) {
	f, exists := registeredFunctions[name]
	if !exists {
		return nil, errwrap.Wrapf(ErrUnknownFunction, "function %q", name)
	}
	return f, nil
}

// RegisteredFunctions returns the sorted names of every registered function.
func RegisteredFunctions() []string {
	names := make([]string, 0, len(registeredFunctions))
	for name := range registeredFunctions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Built-in functions.
var (
	Exp   = RegisterFunction("exp")
	Ln    = RegisterFunction("ln")
	Sin   = RegisterFunction("sin")
	Cos   = RegisterFunction("cos")
	Tan   = RegisterFunction("tan")
	Asin  = RegisterFunction("asin")
	Acos  = RegisterFunction("acos")
	Atan  = RegisterFunction("atan")
	Sinh  = RegisterFunction("sinh")
	Cosh  = RegisterFunction("cosh")
	Tanh  = RegisterFunction("tanh")
	Abs   = RegisterFunction("abs")
	Floor = RegisterFunction("floor")
	Ceil  = RegisterFunction("ceil")
	Sign  = RegisterFunction("sign")
)
