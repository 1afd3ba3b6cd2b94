package sorrel

import "io"

// SetRandReaderForTesting sets the random reader used by GenerateKeypair
// and Encapsulate. This is intended for testing only, never for
// production use. Returns a function to restore the original reader.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
