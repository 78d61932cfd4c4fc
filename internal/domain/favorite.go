package domain

// ContainsDestination reports whether id appears in a favorites list.
func ContainsDestination(favorites []Destination, id string) bool {
	for _, fav := range favorites {
		if fav.ID == id {
			return true
		}
	}
	return false
}
