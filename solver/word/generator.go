package word

// Generator produces an answer word of the requested length.
type Generator interface {
	Generate(length int) string
}
