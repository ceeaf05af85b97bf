package image

import (
	"bytes"
	"image"
	"io"
	"math/rand"
	"testing"
)

var helloWorldPayload = []byte("\x01Hello World!")

func TestReadSinglePass(t *testing.T) {
	dec := NewReader(generateImageWithPayload(64, 32, helloWorldPayload, t))

	buf := make([]byte, len(helloWorldPayload))
	n, err := dec.Read(buf)
	if err != nil {
		t.Fatalf("Unexpected error reading payload: %s", err)
	}
	if n != len(helloWorldPayload) {
		t.Fatalf("Expected %d bytes read, got %d", len(helloWorldPayload), n)
	}
	if !bytes.Equal(buf, helloWorldPayload) {
		t.Errorf("Payload read was %q, expected %q", buf, helloWorldPayload)
	}
}

func TestReadMultipleTimes(t *testing.T) {
	dec := NewReader(generateImageWithPayload(64, 32, helloWorldPayload, t))

	buf := make([]byte, 3)
	n, err := dec.Read(buf)
	if n != 3 || err != nil {
		t.Fatalf("First read returned %d, %v, expected 3, nil", n, err)
	}
	if string(buf) != "\x01He" {
		t.Errorf("First read was %q, expected %q", buf, "\x01He")
	}

	n, err = dec.Read(buf)
	if n != 3 || err != nil {
		t.Fatalf("Second read returned %d, %v, expected 3, nil", n, err)
	}
	if string(buf) != "llo" {
		t.Errorf("Second read was %q, expected %q", buf, "llo")
	}
}

func TestReadToEnd(t *testing.T) {
	const width, height = 515, 443
	dec := NewReader(generateImageWithPayload(width, height, helloWorldPayload, t))

	allBytes, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("Unexpected error draining image: %s", err)
	}
	if expectedBytes := width * height * 3 / 8; len(allBytes) != expectedBytes {
		t.Errorf("Drained %d bytes, expected %d", len(allBytes), expectedBytes)
	}
	if !bytes.Equal(allBytes[:len(helloWorldPayload)], helloWorldPayload) {
		t.Errorf("Drained stream does not start with the embedded payload")
	}
}

func TestTotalBytesForOddGridSizes(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 3}, {5, 3}, {7, 5}, {16, 16}, {51, 43}} {
		width, height := dims[0], dims[1]
		allBytes, err := io.ReadAll(NewReader(generateImage(width, height)))
		if err != nil {
			t.Fatalf("Unexpected error draining %dx%d image: %s", width, height, err)
		}
		if expectedBytes := width * height * 3 / 8; len(allBytes) != expectedBytes {
			t.Errorf("Drained %d bytes from %dx%d image, expected %d", len(allBytes), width, height, expectedBytes)
		}
	}
}

func TestBitPackingOrder(t *testing.T) {
	// LSBs 0,0,0,1,0,0,1,0 in extraction order pack LSB-first into 0b0100_1000
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	bitsInScanOrder := []uint8{0, 0, 0, 1, 0, 0, 1, 0, 1}
	for y := 0; y < 3; y++ {
		pixelOffset := img.PixOffset(0, y)
		for c := 0; c < channelsToRead; c++ {
			img.Pix[pixelOffset+c] = 0xA6 | bitsInScanOrder[y*3+c]
		}
		img.Pix[pixelOffset+3] = 255
	}

	buf := make([]byte, 1)
	n, err := NewReader(img).Read(buf)
	if n != 1 || err != nil {
		t.Fatalf("Read returned %d, %v, expected 1, nil", n, err)
	}
	if buf[0] != 0b0100_1000 {
		t.Errorf("First decoded byte was %#08b, expected %#08b ('H')", buf[0], byte('H'))
	}
}

func TestResumabilityAcrossArbitrarySplits(t *testing.T) {
	const width, height = 40, 30
	payload := generateRandomBytes(200)
	img := generateImageWithPayload(width, height, payload, t)

	singlePass, err := io.ReadAll(NewReader(img))
	if err != nil {
		t.Fatalf("Unexpected error on single-pass drain: %s", err)
	}

	for run := 0; run < 10; run++ {
		dec := NewReader(img)
		var multiPass []byte
		for {
			chunk := make([]byte, rand.Intn(17)+1)
			n, err := dec.Read(chunk)
			multiPass = append(multiPass, chunk[:n]...)
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("Unexpected error on chunked drain: %s", err)
			}
		}
		if !bytes.Equal(singlePass, multiPass) {
			t.Fatalf("Chunked drain produced a different stream than the single-pass drain on run %d", run)
		}
	}
}

func TestExhaustionIsIdempotent(t *testing.T) {
	dec := NewReader(generateImage(4, 4))

	if _, err := io.ReadAll(dec); err != nil {
		t.Fatalf("Unexpected error draining image: %s", err)
	}

	buf := make([]byte, 8)
	for i := 0; i < 3; i++ {
		n, err := dec.Read(buf)
		if n != 0 || err != io.EOF {
			t.Errorf("Read %d after exhaustion returned %d, %v, expected 0, io.EOF", i, n, err)
		}
	}
}

func TestAlphaChannelNeverSampled(t *testing.T) {
	img := generateImageWithPayload(32, 32, helloWorldPayload, t)

	original, err := io.ReadAll(NewReader(img))
	if err != nil {
		t.Fatalf("Unexpected error draining image: %s", err)
	}

	for p := 3; p < len(img.Pix); p += 4 {
		img.Pix[p] = randUint8()
	}

	mutatedAlpha, err := io.ReadAll(NewReader(img))
	if err != nil {
		t.Fatalf("Unexpected error draining image with mutated alpha: %s", err)
	}
	if !bytes.Equal(original, mutatedAlpha) {
		t.Errorf("Mutating alpha channels changed the decoded stream")
	}
}

func TestEmptyBufferReadKeepsCursor(t *testing.T) {
	dec := NewReader(generateImageWithPayload(64, 32, helloWorldPayload, t))

	n, err := dec.Read(nil)
	if n != 0 || err != nil {
		t.Fatalf("Empty read returned %d, %v, expected 0, nil", n, err)
	}

	buf := make([]byte, len(helloWorldPayload))
	if _, err := io.ReadFull(dec, buf); err != nil {
		t.Fatalf("Unexpected error reading payload: %s", err)
	}
	if !bytes.Equal(buf, helloWorldPayload) {
		t.Errorf("Payload after empty read was %q, expected %q", buf, helloWorldPayload)
	}
}

func TestProgressIsAdvisoryOnly(t *testing.T) {
	dec := NewReader(generateImage(10, 10))

	if p := dec.Progress(); p != 0 {
		t.Errorf("Progress before any read was %d, expected 0", p)
	}

	buf := make([]byte, 10)
	for {
		if _, err := dec.Read(buf); err == io.EOF {
			break
		}
		if p := dec.Progress(); p < 0 || p > 100 {
			t.Fatalf("Progress %d out of range", p)
		}
	}
}
