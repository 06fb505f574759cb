package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/voxelsplace/cubicmesh/material"
	"github.com/voxelsplace/cubicmesh/vecmath"
	"github.com/voxelsplace/cubicmesh/volume"
)

const (
	packMagic   = "CMPACK1\x00"
	cdcTarget   = 4096
	cdcMinSize  = 2048
	cdcMaxSize  = 16384
	defaultBPP  = 8
	gearSeedStr = "cubicmesh-cdc-gear-seed"
)

// Pack is the on-disk container for a whole volume: one palette, one set of
// codec parameters, and a page list whose payloads are deduplicated against
// a shared content-defined-chunk dictionary, generalizing VoxelsPlace-VOPL's
// voplpack LayoutCDC container from a single grid to a sparse page map.
type Pack struct {
	BPP     uint8
	Palette material.Palette
	Pages   []packedPage
}

type packedPage struct {
	Coord       vecmath.IVec3
	Encoding    Encoding
	Compression Compression
}

// MarshalVolume serializes a volume into a CDC-deduplicated pack, mirroring
// VoxelsPlace-VOPL's MarshalEx(LayoutCDC, ...) but keyed on page coordinates
// instead of named entries.
func MarshalVolume(vol *volume.Volume[material.Material], pal material.Palette, bpp uint8) ([]byte, error) {
	coords := vol.PageCoords()
	payloads := make([][]byte, len(coords))
	pages := make([]packedPage, len(coords))
	for i, c := range coords {
		page, ok := vol.PageAt(c)
		if !ok {
			return nil, fmt.Errorf("codec: page %v vanished during marshal", c)
		}
		linear := flattenPage(page)
		best := bestPageEncoding(linear, bpp)
		payloads[i] = best.payload
		pages[i] = packedPage{Coord: c, Encoding: best.encoding, Compression: best.compression}
	}

	dict, seqs := buildCDCIndex(payloads)

	var content bytes.Buffer
	_ = binary.Write(&content, binary.LittleEndian, bpp)
	for _, rgba := range pal {
		_ = content.WriteByte(rgba.R)
		_ = content.WriteByte(rgba.G)
		_ = content.WriteByte(rgba.B)
		_ = content.WriteByte(rgba.A)
	}

	// Dictionary block count/lengths and per-page chunk-index sequences are
	// all counts, not fixed-range fields -- varint-encode them, the same
	// compact-count idea VoxelsPlace-VOPL's bitio.go applies to bit widths.
	content.Write(writeUvarint(nil, uint32(len(dict))))
	for _, blk := range dict {
		content.Write(writeUvarint(nil, uint32(len(blk))))
		content.Write(blk)
	}

	content.Write(writeUvarint(nil, uint32(len(pages))))
	for i, p := range pages {
		_ = binary.Write(&content, binary.LittleEndian, p.Coord.X)
		_ = binary.Write(&content, binary.LittleEndian, p.Coord.Y)
		_ = binary.Write(&content, binary.LittleEndian, p.Coord.Z)
		_ = content.WriteByte(byte(p.Encoding))
		_ = content.WriteByte(byte(p.Compression))
		seq := seqs[i]
		content.Write(writeUvarint(nil, uint32(len(seq))))
		for _, idx := range seq {
			content.Write(writeUvarint(nil, uint32(idx)))
		}
	}

	var out bytes.Buffer
	out.WriteString(packMagic)
	out.Write(content.Bytes())
	return out.Bytes(), nil
}

// UnmarshalVolume parses a pack built by MarshalVolume back into a volume,
// its palette and the bits-per-index the pages were encoded with.
func UnmarshalVolume(data []byte) (*volume.Volume[material.Material], material.Palette, uint8, error) {
	var pal material.Palette
	if len(data) < len(packMagic) || string(data[:len(packMagic)]) != packMagic {
		return nil, pal, 0, fmt.Errorf("codec: not a cubicmesh pack")
	}
	body := data[len(packMagic):]
	pos := 0

	readByte := func() (byte, error) {
		if pos >= len(body) {
			return 0, io.ErrUnexpectedEOF
		}
		b := body[pos]
		pos++
		return b, nil
	}
	readInt32 := func() (int32, error) {
		if pos+4 > len(body) {
			return 0, io.ErrUnexpectedEOF
		}
		v := int32(binary.LittleEndian.Uint32(body[pos:]))
		pos += 4
		return v, nil
	}
	readN := func(n uint32) ([]byte, error) {
		if pos+int(n) > len(body) {
			return nil, io.ErrUnexpectedEOF
		}
		b := body[pos : pos+int(n)]
		pos += int(n)
		return b, nil
	}
	readUvarintHere := func() (uint32, error) {
		return readUvarint(body, &pos)
	}

	bpp, err := readByte()
	if err != nil {
		return nil, pal, 0, err
	}
	for i := range pal {
		rgba, err := readN(4)
		if err != nil {
			return nil, pal, 0, err
		}
		pal[i] = material.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	}

	nBlocks, err := readUvarintHere()
	if err != nil {
		return nil, pal, 0, err
	}
	blocks := make([][]byte, nBlocks)
	for i := range blocks {
		blen, err := readUvarintHere()
		if err != nil {
			return nil, pal, 0, err
		}
		b, err := readN(blen)
		if err != nil {
			return nil, pal, 0, err
		}
		blocks[i] = append([]byte(nil), b...)
	}

	nPages, err := readUvarintHere()
	if err != nil {
		return nil, pal, 0, err
	}
	vol := volume.NewVolume[material.Material]()
	for i := uint32(0); i < nPages; i++ {
		var coord vecmath.IVec3
		if coord.X, err = readInt32(); err != nil {
			return nil, pal, 0, err
		}
		if coord.Y, err = readInt32(); err != nil {
			return nil, pal, 0, err
		}
		if coord.Z, err = readInt32(); err != nil {
			return nil, pal, 0, err
		}
		encB, err := readByte()
		if err != nil {
			return nil, pal, 0, err
		}
		compB, err := readByte()
		if err != nil {
			return nil, pal, 0, err
		}
		seqLen, err := readUvarintHere()
		if err != nil {
			return nil, pal, 0, err
		}
		var payload []byte
		for j := uint32(0); j < seqLen; j++ {
			idx, err := readUvarintHere()
			if err != nil {
				return nil, pal, 0, err
			}
			if idx >= nBlocks {
				return nil, pal, 0, fmt.Errorf("codec: chunk index %d out of range", idx)
			}
			payload = append(payload, blocks[idx]...)
		}

		linear, err := decodePagePayload(pagePayload{
			encoding:    Encoding(encB),
			compression: Compression(compB),
			payload:     payload,
		}, bpp, pageVoxelCount)
		if err != nil {
			return nil, pal, 0, err
		}
		vol.SetPage(coord, unflattenPage(linear))
	}
	return vol, pal, bpp, nil
}

// buildCDCIndex performs content-defined chunking over a set of page
// payloads, returning a deduplicated chunk dictionary and, for each
// payload, the sequence of chunk indices that reconstruct it -- a direct
// generalization of VoxelsPlace-VOPL's buildCDCIndex from named pack
// entries to arbitrary byte payloads.
func buildCDCIndex(payloads [][]byte) ([][]byte, [][]int) {
	gear := make([]uint64, 256)
	seed := xxhash.Sum64([]byte(gearSeedStr))
	for i := 0; i < 256; i++ {
		var b [16]byte
		binary.LittleEndian.PutUint64(b[:8], seed+uint64(i)*0x9E3779B185EBCA87)
		binary.LittleEndian.PutUint64(b[8:], ^(seed + uint64(i)*0xC2B2AE3D27D4EB4F))
		v := xxhash.Sum64(b[:])
		if v == 0 {
			v = 0x9E3779B185EBCA87
		}
		gear[i] = v
	}

	blocks := make([][]byte, 0, 256)
	index := make(map[uint64]int, 1024)
	seqs := make([][]int, len(payloads))

	pow := 1 << int(math.Round(math.Log2(float64(cdcTarget))))
	if pow <= 0 {
		pow = cdcTarget
	}
	mask := uint64(pow - 1)

	addBlock := func(b []byte) int {
		h := xxhash.Sum64(b)
		if idx, ok := index[h]; ok && bytes.Equal(blocks[idx], b) {
			return idx
		}
		idx := len(blocks)
		blocks = append(blocks, append([]byte(nil), b...))
		index[h] = idx
		return idx
	}

	for i, data := range payloads {
		if len(data) == 0 {
			continue
		}
		var seq []int
		start := 0
		var h uint64
		for pos := 0; pos < len(data); pos++ {
			h = (h << 1) + gear[data[pos]]
			if pos-start+1 < cdcMinSize {
				continue
			}
			if (h&mask) == 0 || pos-start+1 >= cdcMaxSize {
				idx := addBlock(data[start : pos+1])
				seq = append(seq, idx)
				start = pos + 1
				h = 0
			}
		}
		if start < len(data) {
			seq = append(seq, addBlock(data[start:]))
		}
		seqs[i] = seq
	}
	return blocks, seqs
}
