package detector

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FITS files are sequences of 2880-byte blocks: a header of 80-character
// text records, 36 per block, followed by big-endian 16-bit samples padded
// to the next block boundary. Unsigned counts are stored in the signed
// convention BZERO = 32768, which is an XOR of the sample's top bit.
const (
	fitsBlockSize  = 2880
	fitsRecordSize = 80
)

// Image is a detector image read back from a FITS file.
type Image struct {
	NX, NY  int
	Samples []uint16 // row-major
}

// WriteFITS serializes the detector buffer as a single-HDU FITS image.
func (d *Detector) WriteFITS(w io.Writer) error {
	records := []string{
		fmt.Sprintf("SIMPLE  = %20s", "T"),
		fmt.Sprintf("BITPIX  = %20d", 16),
		fmt.Sprintf("NAXIS   = %20d", 2),
		fmt.Sprintf("NAXIS1  = %20d", d.NX),
		fmt.Sprintf("NAXIS2  = %20d", d.NY),
		fmt.Sprintf("ORIGIN  = %-70s", "'lensy'"),
		fmt.Sprintf("BZERO   = %20d", 32768),
		fmt.Sprintf("BSCALE  = %20d", 1),
		"END",
	}

	var header strings.Builder
	for _, rec := range records {
		header.WriteString(rec)
		header.WriteString(strings.Repeat(" ", fitsRecordSize-len(rec)))
	}
	// Pad the header to a whole number of blocks with blank records
	for header.Len()%fitsBlockSize != 0 {
		header.WriteString(strings.Repeat(" ", fitsRecordSize))
	}
	if _, err := io.WriteString(w, header.String()); err != nil {
		return fmt.Errorf("write FITS header: %w", err)
	}

	// Samples are stored big-endian with the zero offset folded in
	data := make([]byte, len(d.buffer)*2)
	for i, v := range d.buffer {
		binary.BigEndian.PutUint16(data[i*2:], v^0x8000)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write FITS samples: %w", err)
	}

	if pad := (fitsBlockSize - len(data)%fitsBlockSize) % fitsBlockSize; pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return fmt.Errorf("write FITS padding: %w", err)
		}
	}
	return nil
}

// ReadFITS reads back an image written by WriteFITS. The mandatory header
// records are validated; the sample block is decoded bit-exactly.
func ReadFITS(r io.Reader) (*Image, error) {
	keywords := make(map[string]string)

	// Read header blocks until the END record
	block := make([]byte, fitsBlockSize)
	done := false
	for !done {
		if _, err := io.ReadFull(r, block); err != nil {
			return nil, fmt.Errorf("read FITS header: %w", err)
		}
		for off := 0; off < fitsBlockSize; off += fitsRecordSize {
			record := string(block[off : off+fitsRecordSize])
			name := strings.TrimSpace(record[:8])
			if name == "END" {
				done = true
				break
			}
			if name == "" || len(record) < 10 || record[8] != '=' {
				continue
			}
			keywords[name] = strings.TrimSpace(record[10:])
		}
	}

	if keywords["SIMPLE"] != "T" {
		return nil, fmt.Errorf("not a simple FITS file")
	}
	if keywords["BITPIX"] != "16" {
		return nil, fmt.Errorf("unsupported BITPIX %q", keywords["BITPIX"])
	}
	if keywords["NAXIS"] != "2" {
		return nil, fmt.Errorf("unsupported NAXIS %q", keywords["NAXIS"])
	}

	nx, err := strconv.Atoi(keywords["NAXIS1"])
	if err != nil || nx <= 0 {
		return nil, fmt.Errorf("invalid NAXIS1 %q", keywords["NAXIS1"])
	}
	ny, err := strconv.Atoi(keywords["NAXIS2"])
	if err != nil || ny <= 0 {
		return nil, fmt.Errorf("invalid NAXIS2 %q", keywords["NAXIS2"])
	}

	data := make([]byte, nx*ny*2)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("read FITS samples: %w", err)
	}

	img := &Image{NX: nx, NY: ny, Samples: make([]uint16, nx*ny)}
	for i := range img.Samples {
		img.Samples[i] = binary.BigEndian.Uint16(data[i*2:]) ^ 0x8000
	}
	return img, nil
}
