package initchecker

import (
	"fmt"
	"reflect"
	"strings"
)

// CheckInit принимает пары "имя", зависимость и паникует со списком всех неинициализированных
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: odd number of arguments")
	}
	missing := []string{}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: first argument of pair must be string")
		}
		if isNil(pairs[i+1]) {
			missing = append(missing, name)
		}
	}
	if len(missing) != 0 {
		panic(fmt.Sprintf("dependencies not initialized: %s", strings.Join(missing, ", ")))
	}
}

// isNil ловит и типизированный nil, например (*impl)(nil) в интерфейсе
func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
