//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package gen

//
// misc generic functions
//

// Unique - return only the unique items from a slice
func Unique[T comparable](s []T) []T {
	inResult := make(map[T]bool)
	var result []T
	for _, str := range s {
		if _, ok := inResult[str]; !ok {
			inResult[str] = true
			result = append(result, str)
		}
	}
	return result
}

// Flatten - turn a slice of slices into a slice
func Flatten[T any](lists [][]T) []T {
	var res []T
	for _, list := range lists {
		res = append(res, list...)
	}
	return res
}

// ToSet - convert a slice to a set, i.e. map[T]bool
func ToSet[T comparable](sl []T) map[T]bool {
	m := make(map[T]bool, len(sl))
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = true
	}
	return m
}

// StringMapKeysIntoSlice - convert map[string]T to []string of the keys
func StringMapKeysIntoSlice[T any](mp map[string]T) []string {
	keys := make([]string, len(mp))
	count := 0
	for k := range mp {
		keys[count] = k
		count += 1
	}
	return keys
}
