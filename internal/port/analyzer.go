package port

// Cleaner normalizes raw ebook text.
type Cleaner interface {
	Clean(text string) string
}

type Tokenizer interface {
	Tokenize(text string) []string
}
