package domain

// RetrievedPassage pairs a chunk with its similarity to the query that
// selected it. Results are ephemeral and never persisted.
type RetrievedPassage struct {
	Chunk

	// Similarity is the cosine similarity between the chunk embedding
	// and the query embedding.
	Similarity float64
}

// Answer is the synthesised response to a question together with the
// passages that grounded it.
type Answer struct {
	// Text is the raw model output, unmodified.
	Text string

	// Passages are the retrieved chunks supplied to the model,
	// in selection order.
	Passages []RetrievedPassage
}
