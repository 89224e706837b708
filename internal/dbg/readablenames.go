package dbg

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// This converts arbitrary values (usually vertex pointers or edge handles)
// into random readable names. It flagrantly leaks memory but generates the
// names lazily, so it's not a problem unless you're actually using it.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name for obj, which must be comparable.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

var nameColors = []func(interface{}) aurora.Value{
	aurora.Cyan,
	aurora.Green,
	aurora.Yellow,
	aurora.Magenta,
	aurora.Blue,
	aurora.Red,
}

// ColorName is Name colored for the terminal. The same name always gets the
// same color.
func ColorName(obj interface{}) string {
	name := Name(obj)
	h := fnv.New32a()
	h.Write([]byte(name))
	return nameColors[h.Sum32()%uint32(len(nameColors))](name).String()
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                4,
	DisablePointerAddresses: true,
	DisableMethods:          true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump pretty prints values for failure diagnostics. Quad-edge structures
// are cyclic, so the depth is limited.
func Dump(values ...interface{}) string {
	return dumpConfig.Sdump(values...)
}
