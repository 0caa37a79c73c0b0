package visitor

// Visitor is an interface that Visits over pairs of (key, element).
// The Visit method calls the provided callback for each pair.
// If the callback returns (false, nil), the Visit stops.
// If the callback returns an error, the Visit stops and returns that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// Collect visits all elements and returns them in visit order
func Collect[K comparable, E any](visit Visitor[K, E]) ([]E, error) {
	var result []E
	err := visit(func(_ K, element E) (bool, error) {
		result = append(result, element)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
