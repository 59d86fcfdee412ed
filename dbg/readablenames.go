package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names, which makes
// graph dumps much easier to follow than raw addresses when a star holds
// half a dozen bundles. Names are memoized for the life of the process and
// generated lazily, so the map only grows while something is actually
// dumping.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order, so we make them nondeterministic
	// as a reminder that the same name never means the same thing between
	// runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
