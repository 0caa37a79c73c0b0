package visitor

import "container/list"

// ListVisitorOf creates a visitor for a linked list, keys are element positions
func ListVisitorOf(aList *list.List) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		i := 0
		for e := aList.Front(); e != nil; e = e.Next() {
			continueVisit, err := f(i, e.Value)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
			i++
		}
		return nil
	}
}
