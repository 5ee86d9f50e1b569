package guard

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrymomot/contract/pkg/messages"
)

// Integer is satisfied by every integer type; enum members are declared on one
// of them.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Enum describes the closed set of named members of an integer type.
//
//	type Level int
//
//	const (
//		One   Level = 1
//		Two   Level = 2
//		Three Level = 3
//	)
//
//	var Levels = guard.Must(guard.NewEnum(map[Level]string{
//		One: "One", Two: "Two", Three: "Three",
//	}))
type Enum[E Integer] struct {
	typeName string
	names    map[E]string
	values   map[string]E
	members  []E
}

var (
	errNoMembers     = errors.New("enum has no members")
	errBlankMember   = errors.New("enum member has a blank name")
	errDuplicateName = errors.New("enum member name is used more than once")
	errNilEnum       = errors.New("enum definition is nil")
)

// NewEnum defines an enum from its members and their names. Names must be
// non-blank and unique; violations fail with ErrConfiguration.
func NewEnum[E Integer](members map[E]string) (*Enum[E], error) {
	typeName := enumTypeName[E]()
	if len(members) == 0 {
		return nil, enumError(typeName, errNoMembers)
	}

	e := &Enum[E]{
		typeName: typeName,
		names:    make(map[E]string, len(members)),
		values:   make(map[string]E, len(members)),
		members:  make([]E, 0, len(members)),
	}
	for value, name := range members {
		if strings.TrimSpace(name) == "" {
			return nil, enumError(typeName, fmt.Errorf("%w: %d", errBlankMember, value))
		}
		if _, dup := e.values[name]; dup {
			return nil, enumError(typeName, fmt.Errorf("%w: %s", errDuplicateName, name))
		}
		e.names[value] = name
		e.values[name] = value
		e.members = append(e.members, value)
	}
	slices.Sort(e.members)

	return e, nil
}

func enumError(typeName string, cause error) *Error {
	err := newError(ErrConfiguration, messages.KeyInvalidEnum, "", "type", typeName, "cause", cause.Error())
	err.Cause = cause
	return err
}

// enumTypeName returns the package-qualified name of E.
func enumTypeName[E Integer]() string {
	t := reflect.TypeFor[E]()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// TypeName returns the package-qualified name of the enum type.
func (e *Enum[E]) TypeName() string {
	return e.typeName
}

// Members returns the defined members in ascending order.
func (e *Enum[E]) Members() []E {
	return slices.Clone(e.members)
}

// Name returns the name of a defined member.
func (e *Enum[E]) Name(value E) (string, bool) {
	name, ok := e.names[value]
	return name, ok
}

// Defined reports whether value resolves to a member. See Parse.
func (e *Enum[E]) Defined(value any) bool {
	_, ok := e.Parse(value)
	return ok
}

// Parse resolves value to a member. value may be an E, any integer holding a
// member's value, or a member's exact name. Integers that do not fit in E
// never resolve.
func (e *Enum[E]) Parse(value any) (E, bool) {
	var member E
	switch v := value.(type) {
	case nil:
		return member, false
	case E:
		member = v
	case string:
		member, ok := e.values[v]
		return member, ok
	default:
		var ok bool
		if member, ok = convertInteger[E](v); !ok {
			return member, false
		}
	}
	_, ok := e.names[member]
	return member, ok
}

// convertInteger converts any integer value to E without loss.
func convertInteger[E Integer](value any) (E, bool) {
	var zero E
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < 0 && zero-1 > 0 {
			return zero, false
		}
		e := E(i)
		if int64(e) != i {
			return zero, false
		}
		return e, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		e := E(u)
		if e < 0 || uint64(e) != u {
			return zero, false
		}
		return e, true
	}
	return zero, false
}

// RejectIfUndefinedEnumMember resolves value to a member of enum (see
// Enum.Parse) and returns it. It fails with ErrInvalidState when value is not
// a defined member, and with ErrConfiguration when enum is nil.
func RejectIfUndefinedEnumMember[E Integer](enum *Enum[E], value any, name string) (E, error) {
	var zero E
	if enum == nil {
		err := newError(ErrConfiguration, messages.KeyInvalidEnum, name,
			"type", enumTypeName[E](),
			"cause", errNilEnum.Error(),
		)
		err.Cause = errNilEnum
		return zero, err
	}

	member, ok := enum.Parse(value)
	if !ok {
		args := []string{"type", enum.TypeName()}
		if value != nil {
			args = append(args, "value", fmt.Sprint(value))
		}
		return zero, newError(ErrInvalidState, messages.KeyUndefinedEnum, name, args...)
	}
	return member, nil
}
