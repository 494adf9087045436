package entity

// Dog is a dog record under users/{uid}/dogs/{key}.
type Dog struct {
	Name         string  `json:"name"`
	Age          float64 `json:"age"`
	Race         string  `json:"race"`
	FavoriteToy  string  `json:"favoriteToy"`
	FavoriteFood string  `json:"favoriteFood"`
	Timestamp    int64   `json:"timestamp"` // Epoch milliseconds of when the dog was added.
}
