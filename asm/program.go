package asm

// ListEntry ties an emitted memory word to the source line that
// produced it.
type ListEntry struct {
	Address int
	LineNo  int
}

// Program is a finished memory image plus its source listing.
type Program struct {
	Image   []int
	Listing []ListEntry
}

// Sink accepts finished memory words for a running machine.
type Sink interface {
	Poke(value int, address int) error
}

// Commit writes the whole memory image into a sink, word by word.
func (prog *Program) Commit(sink Sink) (err error) {
	for address, value := range prog.Image {
		err = sink.Poke(value, address)
		if err != nil {
			return
		}
	}

	return
}

// LineAt reports the source line of the word emitted at an address.
func (prog *Program) LineAt(address int) (lineno int, ok bool) {
	for _, entry := range prog.Listing {
		if entry.Address == address {
			return entry.LineNo, true
		}
	}

	return 0, false
}
