package hyphenate

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/anaphora/hyphenate/dat"
)

const (
	magic            = "HYPH"
	formatVersion    = uint16(1)
	variantStd       = byte(0)
	variantExt       = byte(1)
	serialBackendDAT = byte(0)
)

// Save writes dict to w in this package's binary dictionary format. Only
// dat-backed dictionaries can be serialized; hash-backed dictionaries
// return an error (the hash trie's construction-time layout, adapted from
// TinyHashTrie, is not meant to be persisted -- rebuild it from the
// original pattern source instead).
func (dict *Dictionary) Save(w io.Writer) error {
	db, ok := dict.patterns.(*datBackend)
	if !ok {
		return fmt.Errorf("hyphenate: only dat-backed dictionaries can be serialized")
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(magic); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, formatVersion); err != nil {
		return err
	}
	variant := variantStd
	if dict.extended {
		variant = variantExt
	}
	if err := writeBytes(bw, []byte{variant, serialBackendDAT, byte(dict.Normalization), byte(dict.LeftMin), byte(dict.RightMin)}); err != nil {
		return err
	}
	if err := writeString(bw, dict.Language); err != nil {
		return err
	}
	if err := writeString(bw, dict.Identifier); err != nil {
		return err
	}
	if err := saveDAT(bw, db.compiled); err != nil {
		return err
	}
	if err := savePatternStore(bw, dict.patternsV); err != nil {
		return err
	}
	if dict.extended {
		if err := savePatchStore(bw, dict.patches); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveFile is a convenience wrapper around Save that writes to a new file
// at path.
func (dict *Dictionary) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dict.Save(f)
}

// Load reads a dictionary previously written by Save.
//
// If normalization is not NormalizationNone, it must match the form the
// dictionary was built under, or ErrNormalizationMismatch is returned;
// pass NormalizationNone to accept whatever the file declares.
func Load(r io.Reader, normalization NormalizationForm) (*Dictionary, error) {
	br := bufio.NewReader(r)
	var gotMagic [4]byte
	if _, err := io.ReadFull(br, gotMagic[:]); err != nil {
		return nil, err
	}
	if string(gotMagic[:]) != magic {
		return nil, ErrIncompatibleVersion
	}
	var version uint16
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, ErrIncompatibleVersion
	}
	header := make([]byte, 5)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, err
	}
	variant, backend, normByte, leftMin, rightMin := header[0], header[1], header[2], header[3], header[4]
	if backend != serialBackendDAT {
		return nil, fmt.Errorf("hyphenate: unknown serialized backend tag %d", backend)
	}
	fileNorm := NormalizationForm(normByte)
	if normalization != NormalizationNone && normalization != fileNorm {
		return nil, ErrNormalizationMismatch
	}
	language, err := readString(br)
	if err != nil {
		return nil, err
	}
	identifier, err := readString(br)
	if err != nil {
		return nil, err
	}
	compiled, err := loadDAT(br)
	if err != nil {
		return nil, err
	}
	patternsV, err := loadPatternStore(br)
	if err != nil {
		return nil, err
	}
	dict := &Dictionary{
		exceptions:    newExceptionStore(),
		patterns:      &datBackend{frozen: true, compiled: compiled},
		patternsV:     patternsV,
		extended:      variant == variantExt,
		Identifier:    identifier,
		Language:      language,
		LeftMin:       int(leftMin),
		RightMin:      int(rightMin),
		Normalization: fileNorm,
	}
	if dict.extended {
		dict.patches, err = loadPatchStore(br)
		if err != nil {
			return nil, err
		}
	}
	return dict, nil
}

// LoadFile is a convenience wrapper around Load that reads from path.
func LoadFile(path string, normalization NormalizationForm) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, normalization)
}

func saveDAT(w io.Writer, d *dat.DAT) error {
	if err := binary.Write(w, binary.LittleEndian, d.Root); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, d.Sigma); err != nil {
		return err
	}
	if err := writeInt32Slice(w, d.Base); err != nil {
		return err
	}
	if err := writeInt32Slice(w, d.Check); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, d.MapPaged.Top); err != nil {
		return err
	}
	if err := writeUint16Slice(w, d.MapPaged.Pages); err != nil {
		return err
	}
	return writeBytes(w, []byte{d.MinLeft, d.MinRight})
}

func loadDAT(r io.Reader) (*dat.DAT, error) {
	d := &dat.DAT{}
	if err := binary.Read(r, binary.LittleEndian, &d.Root); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &d.Sigma); err != nil {
		return nil, err
	}
	var err error
	if d.Base, err = readInt32Slice(r); err != nil {
		return nil, err
	}
	if d.Check, err = readInt32Slice(r); err != nil {
		return nil, err
	}
	if err = binary.Read(r, binary.LittleEndian, &d.MapPaged.Top); err != nil {
		return nil, err
	}
	if d.MapPaged.Pages, err = readUint16Slice(r); err != nil {
		return nil, err
	}
	minmax := make([]byte, 2)
	if _, err = io.ReadFull(r, minmax); err != nil {
		return nil, err
	}
	d.MinLeft, d.MinRight = minmax[0], minmax[1]
	return d, nil
}

func savePatternStore(w io.Writer, s *patternStore) error {
	if err := writeBytes(w, []byte{s.width}); err != nil {
		return err
	}
	if err := writeUint8Slice(w, s.length); err != nil {
		return err
	}
	return writeUint8Slice(w, s.payload)
}

func loadPatternStore(r io.Reader) (*patternStore, error) {
	width := make([]byte, 1)
	if _, err := io.ReadFull(r, width); err != nil {
		return nil, err
	}
	s := &patternStore{width: width[0]}
	var err error
	if s.length, err = readUint8Slice(r); err != nil {
		return nil, err
	}
	if s.payload, err = readUint8Slice(r); err != nil {
		return nil, err
	}
	return s, nil
}

// savePatchStore writes s.patches[1:] (index 0 is always the dummy
// placeholder reserved by newPatchStore) together with the ref/keyLen/seq
// side arrays that index into it.
func savePatchStore(w io.Writer, s *patchStore) error {
	real := s.patches[1:]
	if err := binary.Write(w, binary.LittleEndian, uint32(len(real))); err != nil {
		return err
	}
	for _, p := range real {
		if err := binary.Write(w, binary.LittleEndian, int32(p.DropBefore)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int32(p.DropAfter)); err != nil {
			return err
		}
		if err := writeString(w, p.Replacement); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int32(p.HyphenAt)); err != nil {
			return err
		}
	}
	if err := writeUint32Slice(w, s.ref); err != nil {
		return err
	}
	if err := writeUint16Slice(w, s.keyLen); err != nil {
		return err
	}
	return writeUint32Slice(w, s.seq)
}

func loadPatchStore(r io.Reader) (*patchStore, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	s := &patchStore{patches: make([]Patch, 1, n+1)}
	for i := uint32(0); i < n; i++ {
		var dropBefore, dropAfter, hyphenAt int32
		if err := binary.Read(r, binary.LittleEndian, &dropBefore); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &dropAfter); err != nil {
			return nil, err
		}
		replacement, err := readString(r)
		if err != nil {
			return nil, err
		}
		if err = binary.Read(r, binary.LittleEndian, &hyphenAt); err != nil {
			return nil, err
		}
		s.patches = append(s.patches, Patch{
			DropBefore:  int(dropBefore),
			DropAfter:   int(dropAfter),
			Replacement: replacement,
			HyphenAt:    int(hyphenAt),
		})
	}
	var err error
	if s.ref, err = readUint32Slice(r); err != nil {
		return nil, err
	}
	if s.keyLen, err = readUint16Slice(r); err != nil {
		return nil, err
	}
	if s.seq, err = readUint32Slice(r); err != nil {
		return nil, err
	}
	return s, nil
}

func writeBytes(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeInt32Slice(w io.Writer, s []int32) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, s)
}

func readInt32Slice(r io.Reader) ([]int32, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	s := make([]int32, n)
	if err := binary.Read(r, binary.LittleEndian, s); err != nil {
		return nil, err
	}
	return s, nil
}

func writeUint16Slice(w io.Writer, s []uint16) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, s)
}

func readUint16Slice(r io.Reader) ([]uint16, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	s := make([]uint16, n)
	if err := binary.Read(r, binary.LittleEndian, s); err != nil {
		return nil, err
	}
	return s, nil
}

func writeUint32Slice(w io.Writer, s []uint32) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, s)
}

func readUint32Slice(r io.Reader) ([]uint32, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	s := make([]uint32, n)
	if err := binary.Read(r, binary.LittleEndian, s); err != nil {
		return nil, err
	}
	return s, nil
}

func writeUint8Slice(w io.Writer, s []uint8) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	return writeBytes(w, s)
}

func readUint8Slice(r io.Reader) ([]uint8, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	s := make([]uint8, n)
	if _, err := io.ReadFull(r, s); err != nil {
		return nil, err
	}
	return s, nil
}
