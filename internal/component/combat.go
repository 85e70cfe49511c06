package component

// Health - компонент здоровья. Value никогда не становится отрицательным.
type Health struct {
	Value int
	Max   int
}
