package machine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SaveImage writes a memory image as decimal text, one word per line.
func SaveImage(w io.Writer, image []int) (err error) {
	for _, word := range image {
		_, err = fmt.Fprintf(w, "%v\n", word)
		if err != nil {
			return
		}
	}

	return
}

// LoadImage reads a memory image previously written by SaveImage.
// Short images are zero-padded to MEMORY_SIZE; long images are an error.
func LoadImage(r io.Reader) (image []int, err error) {
	image = make([]int, 0, MEMORY_SIZE)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 {
			continue
		}

		var word int
		word, err = strconv.Atoi(text)
		if err != nil {
			err = ErrInput(text)
			return
		}

		if len(image) == MEMORY_SIZE {
			err = ErrAddress(MEMORY_SIZE)
			return
		}

		image = append(image, word)
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	for len(image) < MEMORY_SIZE {
		image = append(image, 0)
	}

	return
}
