package temperaments

// Temperament es un tag de comportamiento; Name es único y case-sensitive.
type Temperament struct {
	ID   int64
	Name string
}
