package visitor

import (
	"iter"
	"reflect"
)

// SeqVisitorOf creates a visitor for a range-over-func sequence (iter.Seq[E] or an
// equivalent func(yield func(E) bool)). Keys are positions in yield order.
// It returns false if value is not a single value sequence.
func SeqVisitorOf(value interface{}) (Visitor[int, any], bool) {
	if seq, ok := value.(iter.Seq[any]); ok {
		return func(f func(key int, element any) (bool, error)) error {
			i := 0
			for element := range seq {
				continueVisit, err := f(i, element)
				if err != nil {
					return err
				}
				if !continueVisit {
					break
				}
				i++
			}
			return nil
		}, true
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Func || val.IsNil() || !val.Type().CanSeq() {
		return nil, false
	}
	return func(f func(key int, element any) (bool, error)) error {
		i := 0
		for element := range val.Seq() {
			continueVisit, err := f(i, element.Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
			i++
		}
		return nil
	}, true
}
